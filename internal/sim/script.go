// Package sim runs scripted snake games on virtual time. A script is a YAML
// list of steps:
//
//	- signal: up     # send a directional signal
//	- wait: 1500ms   # advance virtual time, firing due timers
//	- tick: 3        # run ticks by hand without moving the clock
//
// Runs are deterministic for a given seed and config.
package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Step is a single script instruction. Exactly one field is set.
type Step struct {
	Signal core.Signal   `yaml:"signal,omitempty"`
	Wait   time.Duration `yaml:"wait,omitempty"`
	Tick   int           `yaml:"tick,omitempty"`
}

// String describes the step for traces.
func (s Step) String() string {
	switch {
	case s.Signal != core.SignalNone:
		return "signal " + s.Signal.String()
	case s.Wait > 0:
		return "wait " + s.Wait.String()
	default:
		return fmt.Sprintf("tick %d", s.Tick)
	}
}

func (s Step) validate() error {
	set := 0
	if s.Signal != core.SignalNone {
		set++
	}
	if s.Wait != 0 {
		set++
		if s.Wait < 0 {
			return fmt.Errorf("negative wait %v", s.Wait)
		}
	}
	if s.Tick != 0 {
		set++
		if s.Tick < 0 {
			return fmt.Errorf("negative tick count %d", s.Tick)
		}
	}
	if set != 1 {
		return errors.New("step must set exactly one of signal, wait or tick")
	}
	return nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("sim: cannot parse script: %w", err)
	}
	if len(steps) == 0 {
		return nil, errors.New("sim: script has no steps")
	}
	for i, s := range steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("sim: step %d: %w", i+1, err)
		}
	}
	return steps, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: cannot read script %s: %w", path, err)
	}
	return ParseScript(data)
}
