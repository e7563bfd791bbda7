package words

// Entry is a seed record for the dictionary_words table
type Entry struct {
	Text       string
	Complexity int
	Category   string
}

// Dictionary returns the built-in list of 5-letter Lithuanian words used to
// seed an empty database. Complexity 1 words use only the basic alphabet;
// words with ogoneks, carons or macrons rank higher.
func Dictionary() []Entry {
	return []Entry{
		{"LABAS", 1, "other"},
		{"NAMAS", 1, "noun"},
		{"SODAS", 1, "noun"},
		{"LAPAS", 1, "noun"},
		{"MEDIS", 1, "noun"},
		{"RANKA", 1, "noun"},
		{"GALVA", 1, "noun"},
		{"PIEVA", 1, "noun"},
		{"DUONA", 1, "noun"},
		{"KNYGA", 1, "noun"},
		{"TEMPO", 1, "noun"},
		{"GERAS", 1, "adjective"},
		{"BALTA", 1, "adjective"},
		{"JUODA", 1, "adjective"},
		{"PILKA", 1, "adjective"},
		{"TYLUS", 1, "adjective"},
		{"AKMUO", 1, "noun"},
		{"UGNIS", 1, "noun"},
		{"ŽODIS", 2, "noun"},
		{"ŽIEMA", 2, "noun"},
		{"VĖJAS", 2, "noun"},
		{"SAULĖ", 2, "noun"},
		{"ŽUVIS", 2, "noun"},
		{"ŽALIA", 2, "adjective"},
		{"GRAŽI", 2, "adjective"},
		{"LAIMĖ", 2, "noun"},
		{"ŠARKA", 2, "noun"},
		{"ŠALNA", 2, "noun"},
		{"ŠALIS", 2, "noun"},
		{"ŽĄSIS", 3, "noun"},
	}
}
