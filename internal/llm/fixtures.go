package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Fixture is a recorded Gemini HTTP exchange replayed by tests.
type Fixture struct {
	Name   string          `json:"name"`
	Model  string          `json:"model"`
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// LoadFixture loads a fixture from the package testdata directory.
func LoadFixture(name string) (*Fixture, error) {
	fixturePath := filepath.Join("testdata", "fixtures", name+".json")

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixture not found: %s", name)
		}
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture %s (invalid JSON): %w", name, err)
	}

	if fixture.Name == "" {
		return nil, fmt.Errorf("fixture %s: missing 'name' field", name)
	}
	if fixture.Status == 0 {
		return nil, fmt.Errorf("fixture %s: missing 'status' field", name)
	}
	if len(fixture.Body) == 0 {
		return nil, fmt.Errorf("fixture %s: missing 'body' field", name)
	}

	return &fixture, nil
}
