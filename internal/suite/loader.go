package suite

import (
	"fmt"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if strings.TrimSpace(c.Expression) == "" {
			return nil, fmt.Errorf("case %q has no expression", c.ID)
		}
		if strings.Trim(c.Vector, "01") != "" {
			return nil, fmt.Errorf("case %q vector %q must contain only 0 and 1", c.ID, c.Vector)
		}
		if c.Error != "" {
			if _, ok := logic.ParseErrorKind(c.Error); !ok {
				return nil, fmt.Errorf("case %q expects unknown error kind %q", c.ID, c.Error)
			}
			if c.Vector != "" || c.PDNF != nil || c.PCNF != nil {
				return nil, fmt.Errorf("case %q expects both an error and a result", c.ID)
			}
		}
	}

	return &s, nil
}
