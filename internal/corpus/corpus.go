// Package corpus loads the converted project corpus from disk.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/robby/hackswipe/internal/domain"
)

// Load reads a JSON array of project records from path. Records without a
// title or summary are skipped; the converter already drops them, so this is
// a guard against hand-edited corpora.
func Load(path string) ([]domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var all []domain.Project
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	projects := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.Title == "" || p.Summary == "" {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}
