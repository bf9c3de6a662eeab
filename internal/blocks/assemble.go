package blocks

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TokenFunc produces the run-scoped token used to build block IDs. Injectable
// so tests can pin exact identifiers.
type TokenFunc func() string

// DefaultToken returns a short random run token.
func DefaultToken() string {
	return uuid.NewString()[:8]
}

// Assemble pairs each classified chunk with an identifier and computes the
// run aggregates. IDs are token-index-length; the index alone already makes
// them unique within a run, the length is carried for at-a-glance debugging.
func Assemble(chunks []Chunk, cats []Category, token string) *Result {
	out := make([]Block, len(chunks))
	total := 0
	for i, c := range chunks {
		n := utf8.RuneCountInString(c.Content)
		total += n
		if c.Swallowed {
			total++ // the separator consumed at this boundary
		}
		out[i] = Block{
			ID:       fmt.Sprintf("%s-%d-%d", token, i, n),
			Content:  c.Content,
			Category: cats[i],
		}
	}
	return &Result{
		Blocks:          out,
		TotalCharacters: total,
		BlockCount:      len(out),
	}
}
