package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tempo/internal/domain"
	"gopkg.in/yaml.v3"
)

// loadTasks reads a YAML or JSON task list from path, or returns the
// default tasks when path is empty.
func loadTasks(path string) ([]domain.Task, error) {
	if path == "" {
		return domain.DefaultTasks(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tasks file: %w", err)
	}
	return parseTasks(data)
}

// parseTasks decodes a task list. JSON is accepted as a YAML subset.
func parseTasks(data []byte) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parsing tasks file: %w", err)
	}
	if err := domain.ValidateTasks(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// profileFlags are the profile overrides shared by plan, prompt and session.
type profileFlags struct {
	energyPeak string
	start      string
}

func (f profileFlags) apply(p domain.UserProfile) (domain.UserProfile, error) {
	if f.energyPeak != "" {
		p.EnergyPeak = domain.EnergyPeak(f.energyPeak)
	}
	if f.start != "" {
		p.Start = f.start
	}
	if err := p.Validate(); err != nil {
		return domain.UserProfile{}, err
	}
	return p, nil
}
