package stats

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// HeuristicName selects the fixed-ratio token counter.
const HeuristicName = "heuristic"

// Counter counts tokens in text.
type Counter interface {
	Count(text string) int
	Name() string
}

// NewCounter returns the counter for the given tokenizer name. An empty name
// or "heuristic" selects the fixed-ratio heuristic; any other name is treated
// as a tiktoken encoding (e.g. "cl100k_base", "o200k_base").
func NewCounter(name string) (Counter, error) {
	if name == "" || name == HeuristicName {
		return heuristicCounter{}, nil
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("tokenizer %q: %w", name, err)
	}
	return &tiktokenCounter{name: name, enc: enc}, nil
}

// heuristicCounter estimates tokens with the rule of thumb of ~4 characters
// per token. Characters are runes, so non-ASCII text is not over-counted.
type heuristicCounter struct{}

func (heuristicCounter) Count(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return (n + 3) / 4
}

func (heuristicCounter) Name() string { return HeuristicName }

// tiktokenCounter counts tokens with a real BPE encoding.
type tiktokenCounter struct {
	name string
	enc  *tiktoken.Tiktoken
}

func (c *tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

func (c *tiktokenCounter) Name() string { return c.name }

// Base64Tokens returns the token cost of the base64 encoding of a payload,
// the form an image takes when inlined into model context.
func Base64Tokens(data []byte, c Counter) int {
	if len(data) == 0 {
		return 0
	}
	return c.Count(base64.StdEncoding.EncodeToString(data))
}
