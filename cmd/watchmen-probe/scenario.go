package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// scenario is a replayable error storm: a list of reports, each fired after
// its own delay from scenario start.
type scenario struct {
	Events []scenarioEvent `yaml:"events"`
}

type scenarioEvent struct {
	Message string       `yaml:"message"`
	Delay   yamlDuration `yaml:"delay"`
	Panics  bool         `yaml:"panic"` // fire as a recovered panic instead of an error
}

// yamlDuration parses Go duration strings ("150ms", "2s") from YAML scalars.
type yamlDuration time.Duration

func (d *yamlDuration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid delay %q: %w", raw, err)
	}
	*d = yamlDuration(v)
	return nil
}

func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(s.Events) == 0 {
		return nil, fmt.Errorf("scenario %s has no events", path)
	}
	for i, ev := range s.Events {
		if ev.Message == "" {
			return nil, fmt.Errorf("scenario %s: event %d has no message", path, i)
		}
	}
	return &s, nil
}

// uniformScenario builds a synthetic storm of count identical events spaced
// delay apart, for runs without a scenario file.
func uniformScenario(count int, delay time.Duration) *scenario {
	s := &scenario{Events: make([]scenarioEvent, count)}
	for i := range s.Events {
		s.Events[i] = scenarioEvent{
			Message: fmt.Sprintf("probe storm event %d", i+1),
			Delay:   yamlDuration(time.Duration(i) * delay),
		}
	}
	return s
}
