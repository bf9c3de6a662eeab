package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "line one\r\nline two\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	// Extraction is verbatim; normalization happens in the pipeline.
	if got != content {
		t.Errorf("text = %q", got)
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// writeDocx builds a minimal docx container around the given document.xml body.
func writeDocx(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDocx_Paragraphs(t *testing.T) {
	path := writeDocx(t, `<w:p><w:r><w:t>first paragraph</w:t></w:r></w:p><w:p><w:r><w:t>second</w:t><w:t> paragraph</w:t></w:r></w:p>`)

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got != "first paragraph\nsecond paragraph" {
		t.Errorf("text = %q", got)
	}
}

func TestDocx_BreaksAndTabs(t *testing.T) {
	path := writeDocx(t, `<w:p><w:r><w:t>a</w:t><w:br/><w:t>b</w:t><w:tab/><w:t>c</w:t></w:r></w:p>`)

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got != "a\nb\tc" {
		t.Errorf("text = %q", got)
	}
}

func TestDocx_PreservedSpace(t *testing.T) {
	path := writeDocx(t, `<w:p><w:r><w:t xml:space="preserve">word </w:t><w:t>next</w:t></w:r></w:p>`)

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got != "word next" {
		t.Errorf("text = %q", got)
	}
}

func TestDocx_NotADocx(t *testing.T) {
	// A zip without word/document.xml is rejected.
	path := filepath.Join(t.TempDir(), "odd.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("mimetype")
	w.Write([]byte("application/something"))
	zw.Close()
	f.Close()

	if _, err := File(path); err == nil {
		t.Fatal("expected error for zip without document.xml")
	}
}

func TestDocx_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.docx")
	if err := os.WriteFile(path, []byte("plain text pretending"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := File(path); err == nil {
		t.Fatal("expected error for non-zip docx")
	}
}
