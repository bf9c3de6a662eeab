package blocks

// Chunks splits normalized text into length-bounded chunks. Each chunk holds
// at most maxLen runes. Boundaries prefer the nearest line break at or before
// the length limit (a soft break, excluding the line break from content);
// when no line break exists in the window the chunk is cut at exactly maxLen
// (a hard break, which may split a line mid-way). A line break sitting at a
// chunk boundary is swallowed: it appears in neither chunk and is recorded on
// the preceding chunk so the original text can be reconstructed.
//
// maxLen must be >= 1; callers validate before invoking. Empty input yields
// no chunks.
func Chunks(text string, maxLen int) []Chunk {
	runes := []rune(text)

	var chunks []Chunk
	pos := 0
	for pos < len(runes) {
		end := pos + maxLen
		if end >= len(runes) {
			// Terminal chunk: whatever remains.
			chunks = append(chunks, Chunk{Content: string(runes[pos:])})
			break
		}

		// Search backward from the tentative boundary (inclusive) for a
		// line break strictly after pos.
		cut := end
		for i := end; i > pos; i-- {
			if runes[i] == '\n' {
				cut = i
				break
			}
		}

		chunk := Chunk{Content: string(runes[pos:cut])}
		pos = cut
		if pos < len(runes) && runes[pos] == '\n' {
			pos++
			chunk.Swallowed = true
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
