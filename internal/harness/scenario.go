package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines one acceptance scenario: a sequence of CLI invocations
// against a single fresh store.
type Scenario struct {
	// Name uniquely identifies this scenario; it names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Steps are executed in order against the same database.
	Steps []Step `yaml:"steps"`
}

// Step is one CLI invocation with its expectations.
type Step struct {
	// Run is the argument vector after "blade", e.g. [set, user@prod, alice].
	Run []string `yaml:"run"`

	// Stdin feeds the invocation's standard input, for value-from-stdin
	// steps. Empty means no input is attached.
	Stdin string `yaml:"stdin,omitempty"`

	// Want is the exact expected stdout. Checked only when the step is
	// expected to succeed.
	Want string `yaml:"want,omitempty"`

	// WantError is the expected engine error code (e.g. NOT_FOUND). A step
	// with WantError set must fail; its stdout must be empty.
	WantError string `yaml:"want_error,omitempty"`
}

// validate rejects scenarios the runner cannot execute meaningfully.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if len(step.Run) == 0 {
			return fmt.Errorf("scenario %q step %d has no command", s.Name, i+1)
		}
		if step.WantError != "" && step.Want != "" {
			return fmt.Errorf("scenario %q step %d expects both output and an error", s.Name, i+1)
		}
	}
	return nil
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadScenarios reads every *.yaml scenario under dir, sorted by filename
// for a stable run order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
