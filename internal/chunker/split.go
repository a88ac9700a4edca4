package chunker

import "strings"

// Default chunking parameters, in characters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 200
)

// Split cuts text into chunks of at most size characters, preferring line
// boundaries, with roughly overlap characters of trailing context repeated
// at the start of the next chunk. The sequence is restartable: splitting the
// same text always yields the same fragments.
func Split(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = size / 2
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	lines := strings.Split(text, "\n")
	var chunks []string
	var current []string
	currentLen := 0
	fresh := 0 // lines added since the last flush, excluding overlap carry

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		// Carry trailing lines into the next chunk as overlap context.
		var carried []string
		carriedLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			lineLen := len(current[i]) + 1
			if carriedLen+lineLen > overlap {
				break
			}
			carried = append([]string{current[i]}, carried...)
			carriedLen += lineLen
		}
		current = carried
		currentLen = carriedLen
		fresh = 0
	}

	for _, line := range lines {
		lineLen := len(line) + 1
		if currentLen+lineLen > size && currentLen > 0 {
			flush()
		}
		current = append(current, line)
		currentLen += lineLen
		fresh++
	}
	if fresh > 0 {
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	return chunks
}
