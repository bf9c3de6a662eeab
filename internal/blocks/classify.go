package blocks

import "strings"

// Classify assigns a category to each chunk by folding a marker-seen flag
// left to right. The flag flips at most once: the first chunk containing the
// marker becomes MarkerFirst and everything after it AfterMarker, regardless
// of content. There is no path back to Normal.
//
// Detection is a per-chunk substring search. A marker split across a hard
// chunk boundary is present in neither chunk's content and goes undetected;
// this matches the upstream behavior and is covered by tests.
func Classify(chunks []Chunk, marker string) []Category {
	cats := make([]Category, len(chunks))
	seen := false
	for i, c := range chunks {
		cats[i], seen = classifyNext(c.Content, marker, seen)
	}
	return cats
}

// classifyNext is one step of the fold: category for this chunk plus the
// updated marker-seen state. Kept value-in/value-out so repeated runs over
// the same chunks are independent.
func classifyNext(content, marker string, seen bool) (Category, bool) {
	if seen {
		return AfterMarker, true
	}
	if strings.Contains(content, marker) {
		return MarkerFirst, true
	}
	return Normal, false
}
