package api

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid configuration, got error: %v", err)
	}
}

func TestValidate_EmptyPipeline(t *testing.T) {
	c := &Config{}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for empty pipeline")
	}
	if !strings.Contains(err.Error(), "no steps") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingStepName(t *testing.T) {
	c := &Config{Pipeline: []StepConfig{{}}}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownStep(t *testing.T) {
	c := &Config{Pipeline: []StepConfig{{Name: "frobnicate"}}}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "unknown step") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DuplicateStep(t *testing.T) {
	c := &Config{Pipeline: []StepConfig{
		{Name: StepNormalize},
		{Name: StepNormalize},
	}}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate step") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NegativePrecision(t *testing.T) {
	p := -1
	c := &Config{
		Pipeline: []StepConfig{{Name: StepNormalize}},
		Output:   OutputConfig{Precision: &p},
	}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "precision") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfig_Defaults(t *testing.T) {
	c := Default()

	if !c.IsEager() {
		t.Error("default discipline must be eager")
	}
	if got := len(c.Pipeline); got != len(DefaultStepNames) {
		t.Errorf("default pipeline has %d steps, want %d", got, len(DefaultStepNames))
	}
	if got := c.Precision(); got != DefaultPrecision {
		t.Errorf("Precision() = %d, want %d", got, DefaultPrecision)
	}
	cols := c.OutputColumns()
	if len(cols) != len(DefaultOutputColumns) || cols[len(cols)-1] != ColumnReturn {
		t.Errorf("OutputColumns() = %v", cols)
	}

	eager := false
	c.Eager = &eager
	if c.IsEager() {
		t.Error("IsEager() must honor an explicit false")
	}
}
