package catalog

import (
	"fmt"
	"os"

	"github.com/alexanderramin/ptemaster/internal/domain"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Tasks []domain.Task `yaml:"tasks"`
}

// Load reads a custom task catalog from a YAML file. Counters always start
// at zero regardless of what the file contains.
func Load(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(f.Tasks) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no tasks", path)
	}

	seen := make(map[string]bool, len(f.Tasks))
	for i := range f.Tasks {
		t := &f.Tasks[i]
		if t.ID == "" {
			return nil, fmt.Errorf("catalog task %d: missing id", i)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("catalog task %q: duplicate id", t.ID)
		}
		seen[t.ID] = true
		if t.Name == "" {
			return nil, fmt.Errorf("catalog task %q: missing name", t.ID)
		}
		if !domain.ValidSections[string(t.Section)] {
			return nil, fmt.Errorf("catalog task %q: unknown section %q", t.ID, t.Section)
		}
		if t.TargetCount <= 0 {
			return nil, fmt.Errorf("catalog task %q: target must be positive, got %d", t.ID, t.TargetCount)
		}
		t.CurrentCount = 0
	}
	return f.Tasks, nil
}
