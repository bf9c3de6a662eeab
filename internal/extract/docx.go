package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Docx extracts the text of a .docx file. A docx is a zip container; the
// body lives in word/document.xml as WordprocessingML. Text runs (<w:t>)
// are concatenated, paragraph ends and explicit breaks (<w:br/>, <w:cr/>)
// become line breaks, tabs (<w:tab/>) become tab characters. Formatting,
// headers, footnotes, and embedded objects are ignored.
func Docx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			defer rc.Close()
			return documentText(rc)
		}
	}
	return "", errors.New("not a docx document: word/document.xml missing")
}

func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return "", fmt.Errorf("parse text run: %w", err)
				}
				b.WriteString(text)
			case "br", "cr":
				b.WriteByte('\n')
			case "tab":
				b.WriteByte('\t')
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				b.WriteByte('\n')
			}
		}
	}

	// The final paragraph end leaves a trailing newline that is not part of
	// the document text.
	return strings.TrimSuffix(b.String(), "\n"), nil
}
