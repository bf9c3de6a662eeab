package history

import (
	"fmt"
	"strings"
)

// Format renders history entries as aligned terminal output.
func Format(entries []Entry) string {
	if len(entries) == 0 {
		return "pb history\n\n  No runs recorded yet. Run `pb split <file>` first.\n"
	}

	var b strings.Builder
	b.WriteString("pb history\n\n")

	for _, e := range entries {
		marker := "-"
		if e.MarkerFound {
			marker = "marker"
		}
		fmt.Fprintf(&b, "  %s  %-32s %4d blocks  %8d chars  max %-5d %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(e.Source, 32), e.BlockCount, e.TotalCharacters, e.MaxChunkLength, marker)
	}

	fmt.Fprintf(&b, "\n%d run(s)\n", len(entries))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max+1:]
}
