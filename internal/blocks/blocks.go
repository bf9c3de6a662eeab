// Package blocks implements the segmentation-and-classification pipeline:
// line-ending normalization, length-bounded chunking with line-boundary
// backoff, marker classification, and block assembly. The pipeline is pure
// and synchronous; one call over one fully loaded input text is one run, and
// no state survives between runs.
package blocks

import "fmt"

// Options configures one segmentation run.
type Options struct {
	MaxChunkLength int       // upper bound on block size in runes; also the soft-break search window
	Marker         string    // substring whose first occurrence triggers classification change
	Token          TokenFunc // run token source; nil means DefaultToken
}

// Production defaults.
const (
	DefaultMaxChunkLength = 4950
	DefaultMarker         = "[&$]"
)

// DefaultOptions returns the production configuration.
func DefaultOptions() Options {
	return Options{
		MaxChunkLength: DefaultMaxChunkLength,
		Marker:         DefaultMarker,
	}
}

// InvalidConfigError reports options rejected before segmentation runs.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Validate rejects configuration the pipeline is undefined over.
func (o Options) Validate() error {
	if o.MaxChunkLength < 1 {
		return &InvalidConfigError{Reason: fmt.Sprintf("max chunk length must be >= 1, got %d", o.MaxChunkLength)}
	}
	if o.Marker == "" {
		return &InvalidConfigError{Reason: "marker must be non-empty"}
	}
	return nil
}

// Split runs the full pipeline over text: normalize, segment, classify,
// assemble. Re-running over the same text and options yields identical
// contents and categories; IDs vary with the run token.
func Split(text string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	token := DefaultToken
	if opts.Token != nil {
		token = opts.Token
	}

	normalized := Normalize(text)
	chunks := Chunks(normalized, opts.MaxChunkLength)
	cats := Classify(chunks, opts.Marker)
	return Assemble(chunks, cats, token()), nil
}
