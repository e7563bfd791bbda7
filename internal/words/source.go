// Package words supplies target-word selection for new games.
//
// A Source has exactly one capability: pick a word. The server wires either
// the built-in list or the dictionary_words table (the repository layer
// satisfies Source); callers may also supply their own word per game, which
// bypasses the source entirely.
package words

import (
	"errors"
	"math/rand"
)

// Source picks a target word for a new game
type Source interface {
	Pick() (string, error)
}

// ErrNoWords is returned when a source has nothing to pick from
var ErrNoWords = errors.New("word source is empty")

// ListSource picks uniformly from a fixed in-memory candidate list
type ListSource struct {
	words []string
}

// NewListSource creates a list-backed source. The slice is not copied;
// callers must not mutate it afterwards.
func NewListSource(words []string) *ListSource {
	return &ListSource{words: words}
}

// NewDefaultSource creates a list source over the built-in dictionary
func NewDefaultSource() *ListSource {
	entries := Dictionary()
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return &ListSource{words: texts}
}

// Pick returns a random word from the list
func (s *ListSource) Pick() (string, error) {
	if len(s.words) == 0 {
		return "", ErrNoWords
	}
	return s.words[rand.Intn(len(s.words))], nil
}
