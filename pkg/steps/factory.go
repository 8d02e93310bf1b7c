package steps

import (
	"fmt"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/pipeline"
)

// NewStep creates a Step from a StepConfig.
func NewStep(cfg api.StepConfig) (pipeline.Step, error) {
	switch cfg.Name {
	case api.StepCreateKeys:
		return CreateKeys(), nil
	case api.StepNormalize:
		return Normalize(), nil
	case api.StepImputeTicker:
		return ImputeTicker(), nil
	case api.StepOpenLiquidity:
		return OpenLiquidity(), nil
	case api.StepFundValue:
		return FundValue(), nil
	case api.StepAggregateDaily:
		return AggregateDaily(), nil
	default:
		return pipeline.Step{}, fmt.Errorf("unknown step: %s", cfg.Name)
	}
}

// FromConfig builds a pipeline from the configured step list.
func FromConfig(cfg *api.Config) (*pipeline.Pipeline, error) {
	built := make([]pipeline.Step, 0, len(cfg.Pipeline))
	for _, sc := range cfg.Pipeline {
		step, err := NewStep(sc)
		if err != nil {
			return nil, fmt.Errorf("creating step %q: %w", sc.Name, err)
		}
		built = append(built, step)
	}
	return pipeline.New(built...), nil
}

// Default returns the standard six-step blotter pipeline.
func Default() *pipeline.Pipeline {
	p, err := FromConfig(api.Default())
	if err != nil {
		// the default configuration only names registered steps
		panic(err)
	}
	return p
}
