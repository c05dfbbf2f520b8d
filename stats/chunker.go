package stats

import "unicode/utf8"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 512

// DefaultOverlap is the default number of overlapping characters between
// adjacent chunks.
const DefaultOverlap = 128

// Chunker splits text into fixed-size chunks with configurable overlap.
type Chunker struct {
	ChunkSize int // default 512
	Overlap   int // default 128
}

// NewChunker creates a Chunker with default settings.
func NewChunker() *Chunker {
	return &Chunker{
		ChunkSize: DefaultChunkSize,
		Overlap:   DefaultOverlap,
	}
}

// step returns the sanitized chunk size and stride.
func (c *Chunker) step() (int, int) {
	chunkSize := c.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	overlap := c.Overlap
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}
	return chunkSize, chunkSize - overlap
}

// Split divides text into chunks of ChunkSize characters with Overlap
// characters of overlap between adjacent chunks. Sizes are in runes so
// multi-byte text chunks consistently and never cuts mid-rune.
//
// Returns an empty slice for empty text.
// Returns a single chunk if text is shorter than or equal to ChunkSize.
// The last chunk may be shorter than ChunkSize.
func (c *Chunker) Split(text string) []string {
	if text == "" {
		return []string{}
	}

	runes := []rune(text)
	chunkSize, step := c.step()
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// Count returns the number of chunks Split would produce, without
// materializing them.
func (c *Chunker) Count(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}

	chunkSize, step := c.step()
	count := 0
	for start := 0; start < n; start += step {
		count++
		if start+chunkSize >= n {
			break
		}
	}
	return count
}
