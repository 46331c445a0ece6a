package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, `
events:
  - message: first
    delay: 10ms
  - message: second
    delay: 150ms
    panic: true
`)

	s, err := loadScenario(path)
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}
	if len(s.Events) != 2 {
		t.Fatalf("events=%d, want 2", len(s.Events))
	}
	if s.Events[0].Message != "first" || time.Duration(s.Events[0].Delay) != 10*time.Millisecond {
		t.Fatalf("event 0 = %+v", s.Events[0])
	}
	if !s.Events[1].Panics {
		t.Fatalf("event 1 should fire as a panic")
	}
}

func TestLoadScenario_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "no events", body: "events: []\n"},
		{name: "missing message", body: "events:\n  - delay: 5ms\n"},
		{name: "bad delay", body: "events:\n  - message: x\n    delay: soon\n"},
		{name: "not yaml", body: "{{{"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeScenario(t, tc.body)
			if _, err := loadScenario(path); err == nil {
				t.Fatalf("want error for %s", tc.name)
			}
		})
	}
}

func TestUniformScenario(t *testing.T) {
	t.Parallel()

	s := uniformScenario(3, 20*time.Millisecond)
	if len(s.Events) != 3 {
		t.Fatalf("events=%d, want 3", len(s.Events))
	}
	if got := time.Duration(s.Events[2].Delay); got != 40*time.Millisecond {
		t.Fatalf("third delay=%s, want 40ms", got)
	}
}
