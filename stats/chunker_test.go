package stats

import (
	"strings"
	"testing"
)

func TestChunker_Split(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		overlap   int
		text      string
		want      int
	}{
		{"empty text", 512, 128, "", 0},
		{"shorter than chunk", 512, 128, "short", 1},
		{"exactly chunk size", 10, 0, strings.Repeat("a", 10), 1},
		{"two chunks no overlap", 10, 0, strings.Repeat("a", 15), 2},
		{"overlap produces more chunks", 10, 5, strings.Repeat("a", 20), 3},
		{"zero chunk size falls back to default", 0, 0, "tiny", 1},
		{"overlap clamped below chunk size", 4, 10, strings.Repeat("a", 8), 5},
		{"cyrillic sizes in runes", 10, 0, strings.Repeat("ж", 15), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Chunker{ChunkSize: tt.chunkSize, Overlap: tt.overlap}
			chunks := c.Split(tt.text)
			if len(chunks) != tt.want {
				t.Errorf("Split() returned %d chunks, want %d", len(chunks), tt.want)
			}
			if got := c.Count(tt.text); got != len(chunks) {
				t.Errorf("Count() = %d, disagrees with len(Split()) = %d", got, len(chunks))
			}
		})
	}
}

func TestChunker_SplitContent(t *testing.T) {
	c := &Chunker{ChunkSize: 4, Overlap: 2}
	chunks := c.Split("abcdefgh")

	// step = 2: abcd, cdef, efgh
	want := []string{"abcd", "cdef", "efgh"}
	if len(chunks) != len(want) {
		t.Fatalf("Split() = %v, want %v", chunks, want)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestChunker_SplitNonASCII(t *testing.T) {
	c := &Chunker{ChunkSize: 4, Overlap: 2}
	chunks := c.Split("абвгдежз")

	// step = 2, rune boundaries respected: абвг, вгде, дежз
	want := []string{"абвг", "вгде", "дежз"}
	if len(chunks) != len(want) {
		t.Fatalf("Split() = %v, want %v", chunks, want)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestChunker_Defaults(t *testing.T) {
	c := NewChunker()
	if c.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", c.ChunkSize, DefaultChunkSize)
	}
	if c.Overlap != DefaultOverlap {
		t.Errorf("Overlap = %d, want %d", c.Overlap, DefaultOverlap)
	}
}
