package models

// Word categories as stored in dictionary_words
const (
	CategoryNoun      = "noun"
	CategoryVerb      = "verb"
	CategoryAdjective = "adjective"
	CategoryAdverb    = "adverb"
	CategoryOther     = "other"
)

// DictionaryWord represents a candidate target word. Inactive words stay in
// the dictionary but are never picked for new games.
type DictionaryWord struct {
	ID         int64
	WordText   string
	Complexity int
	Category   string
	Active     bool
}
