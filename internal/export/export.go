// Package export writes each block of a run to its own file. Files are
// named by 1-based sequential index, independent of classification, and
// contain the block's exact content with no header or footer.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/suykerbuyk/pasteblock/internal/blocks"
)

// Blocks writes one file per block into dir, creating it if needed.
// Plain files are {0001..NNNN}.txt; with compress they are .txt.zst.
// Returns the written paths in block order.
func Blocks(res *blocks.Result, dir string, compress bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	paths := make([]string, 0, len(res.Blocks))
	for i, b := range res.Blocks {
		path := BlockPath(dir, i+1, compress)
		if err := writeBlock(path, b.Content, compress); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// BlockPath returns the deterministic export path for a 1-based block number.
func BlockPath(dir string, n int, compress bool) string {
	name := fmt.Sprintf("%04d.txt", n)
	if compress {
		name += ".zst"
	}
	return filepath.Join(dir, name)
}

func writeBlock(path, content string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create block file: %w", err)
	}
	defer f.Close()

	if !compress {
		if _, err := f.WriteString(content); err != nil {
			return fmt.Errorf("write block: %w", err)
		}
		return nil
	}

	encoder, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	if _, err := encoder.Write([]byte(content)); err != nil {
		encoder.Close()
		return fmt.Errorf("compress block: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finalize compression: %w", err)
	}
	return nil
}

// Read returns the content of an exported block file, transparently
// decompressing .zst files.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open block file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".zst" {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("create zstd decoder: %w", err)
		}
		defer decoder.Close()
		r = decoder
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read block file: %w", err)
	}
	return string(data), nil
}
