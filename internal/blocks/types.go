package blocks

// Category classifies a block relative to the first marker occurrence.
type Category string

const (
	// Normal: no marker seen yet, and this block does not contain it.
	Normal Category = "NORMAL"
	// MarkerFirst: the first block whose content contains the marker.
	// At most one per run.
	MarkerFirst Category = "MARKER_FIRST"
	// AfterMarker: every block following the MarkerFirst block.
	AfterMarker Category = "AFTER_MARKER"
)

// Block is one contiguous, length-bounded substring of the source text.
type Block struct {
	ID       string
	Content  string
	Category Category
}

// Chunk is a raw segment before classification. Swallowed records whether a
// line break immediately after this chunk was consumed as a separator (it
// appears in neither adjoining chunk's content).
type Chunk struct {
	Content   string
	Swallowed bool
}

// Result is the immutable output of one segmentation run.
type Result struct {
	Blocks          []Block
	TotalCharacters int // rune count of the normalized input
	BlockCount      int
}

// MarkerFound reports whether any block in the run triggered classification.
func (r *Result) MarkerFound() bool {
	for _, b := range r.Blocks {
		if b.Category == MarkerFirst {
			return true
		}
	}
	return false
}
