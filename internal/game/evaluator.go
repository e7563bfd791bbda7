package game

import "strings"

// Evaluate scores guess against target using the standard two-pass rule.
//
// Pass 1 marks exact positional matches and counts the remaining target
// letters. Pass 2 resolves the rest: a letter is Present only while the
// target still has unconsumed occurrences of it, so a letter duplicated in
// the guess is never credited more times than it appears in the target.
//
// Comparison is case-insensitive and rune-based, which keeps Lithuanian
// letters (Ą, Č, Ė, Š, Ž, ...) working. Callers guarantee equal word
// lengths; a mismatch yields an empty pattern.
func Evaluate(guess, target string) Pattern {
	guessRunes := []rune(strings.ToUpper(guess))
	targetRunes := []rune(strings.ToUpper(target))
	if len(guessRunes) != len(targetRunes) {
		return ""
	}

	n := len(guessRunes)
	marks := make([]byte, n)
	remaining := make(map[rune]int, n)

	// First pass: exact matches consume their target letter outright
	for i := 0; i < n; i++ {
		if guessRunes[i] == targetRunes[i] {
			marks[i] = MatchCorrect
		} else {
			remaining[targetRunes[i]]++
		}
	}

	// Second pass: presents consume from the leftover pool, left to right
	for i := 0; i < n; i++ {
		if marks[i] == MatchCorrect {
			continue
		}
		if remaining[guessRunes[i]] > 0 {
			marks[i] = MatchPresent
			remaining[guessRunes[i]]--
		} else {
			marks[i] = MatchAbsent
		}
	}

	return Pattern(marks)
}
