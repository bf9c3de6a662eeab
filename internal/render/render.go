// Package render formats run results for the terminal. Rendering only reads
// the result snapshot; presentation state never reaches the core pipeline.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/suykerbuyk/pasteblock/internal/blocks"
)

// Run renders a run summary plus a per-block table. With show, each block's
// content is printed beneath its header line.
func Run(source string, res *blocks.Result, maxLen int, show bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "pb split %s\n\n", source)
	fmt.Fprintf(&b, "  %-12s %d\n", "blocks", res.BlockCount)
	fmt.Fprintf(&b, "  %-12s %d\n", "characters", res.TotalCharacters)
	fmt.Fprintf(&b, "  %-12s %d\n", "max length", maxLen)
	fmt.Fprintf(&b, "  %-12s %s\n", "marker", markerLine(res))

	if res.BlockCount == 0 {
		return b.String()
	}

	b.WriteString("\n")
	width := len(fmt.Sprintf("%d", res.BlockCount))
	for i, blk := range res.Blocks {
		fmt.Fprintf(&b, "  %*d  %-13s %6d chars  %s\n",
			width, i+1, blk.Category, utf8.RuneCountInString(blk.Content), blk.ID)
		if show {
			b.WriteString(indent(blk.Content))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Block renders one block's content exactly, for piping or copying.
func Block(blk blocks.Block) string {
	return blk.Content
}

func markerLine(res *blocks.Result) string {
	for i, blk := range res.Blocks {
		if blk.Category == blocks.MarkerFirst {
			return fmt.Sprintf("found in block %d", i+1)
		}
	}
	return "not found"
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "     │ " + l
	}
	return strings.Join(lines, "\n")
}
