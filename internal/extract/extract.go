// Package extract turns source documents into plain text for segmentation.
// Word documents (.docx) are unpacked; everything else is read verbatim as
// UTF-8 text. The segmenter is never invoked until extraction has produced
// the complete text.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File returns the plain text of the document at path.
func File(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return Docx(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}
