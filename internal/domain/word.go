package domain

// WordPair is a single vocabulary entry: a Russian word and its English translation
type WordPair struct {
	Source string `json:"russian" yaml:"russian" db:"source"`
	Target string `json:"english" yaml:"english" db:"target"`
}

// String returns pair in "source - target" form
func (p WordPair) String() string {
	return p.Source + " - " + p.Target
}

// Session represents user's quiz state
type Session struct {
	// Current is the word the user is expected to translate
	Current *WordPair
	// Queue holds the rest of the current shuffle cycle
	Queue []WordPair
}
