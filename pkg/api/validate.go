package api

import "fmt"

var validStepNames = map[string]bool{
	StepCreateKeys:     true,
	StepNormalize:      true,
	StepImputeTicker:   true,
	StepOpenLiquidity:  true,
	StepFundValue:      true,
	StepAggregateDaily: true,
}

// Validate checks the run configuration for errors.
func (c *Config) Validate() error {
	if len(c.Pipeline) == 0 {
		return fmt.Errorf("pipeline has no steps")
	}

	names := make(map[string]int)
	for i, step := range c.Pipeline {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i)
		}
		if !validStepNames[step.Name] {
			return fmt.Errorf("step %d: unknown step %q", i, step.Name)
		}
		if prev, exists := names[step.Name]; exists {
			return fmt.Errorf("step %d: duplicate step %q (first used at step %d)", i, step.Name, prev)
		}
		names[step.Name] = i
	}

	if c.Output.Precision != nil && *c.Output.Precision < 0 {
		return fmt.Errorf("output.precision must not be negative")
	}

	return nil
}
