package game

// LetterMatch is the evaluation result for a single letter of a guess.
// The single-character codes are what gets persisted in guess_patterns.
type LetterMatch = byte

const (
	MatchCorrect LetterMatch = 'G' // right letter, right position
	MatchPresent LetterMatch = 'Y' // right letter, wrong position
	MatchAbsent  LetterMatch = 'N' // letter not in the target
)

// Pattern is the ordered per-letter outcome of a guess, one symbol per
// letter of the target word, e.g. "GYNNG".
type Pattern string

// AllCorrect reports whether every position matched exactly.
// The winning condition for a game is any guess with an all-correct pattern.
func (p Pattern) AllCorrect() bool {
	if len(p) == 0 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] != MatchCorrect {
			return false
		}
	}
	return true
}
