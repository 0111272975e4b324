// Package schema declares where each canonical line item sits in the
// statement body.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Positions maps canonical line-item names to their zero-based position
// among the statement's data rows.
type Positions map[string]int

// Default returns the built-in statement layout.
func Default() Positions {
	return Positions{
		"revenue":                   1,
		"ebit":                      2,
		"interest_costs":            3,
		"profit":                    4,
		"current_asset":             7,
		"assets":                    8,
		"ncib_debt":                 9,
		"current_liability":         10,
		"liabilities":               11,
		"debt_service_of_principal": 12,
		"equity":                    13,
		"cash_flow":                 15,
	}
}

// Load reads a YAML position map and overlays it on the defaults, so a
// schema file only has to name the positions that differ.
func Load(path string) (Positions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var overrides map[string]int
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse schema yaml: %w", err)
	}

	positions := Default()
	for name, pos := range overrides {
		positions[name] = pos
	}
	return positions, nil
}
