package suite

// TestSuite is a YAML file of expressions and their expected truth tables.
type TestSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case describes one expression. Empty expectations are not checked; Error
// names the expected failure kind, e.g. UnmatchedParenthesis.
type Case struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description,omitempty"`
	Expression  string   `yaml:"expression"`
	Variables   []string `yaml:"variables,omitempty"`
	Vector      string   `yaml:"vector,omitempty"`
	PDNF        *string  `yaml:"pdnf,omitempty"`
	PCNF        *string  `yaml:"pcnf,omitempty"`
	Error       string   `yaml:"error,omitempty"`
}
