package api

const (
	StepCreateKeys     = "create-keys"
	StepNormalize      = "normalize"
	StepImputeTicker   = "impute-ticker"
	StepOpenLiquidity  = "open-liquidity"
	StepFundValue      = "fund-value"
	StepAggregateDaily = "aggregate-daily"

	ColumnLKID     = "lkid"
	ColumnDate     = "date"
	ColumnAnalyst  = "analyst"
	ColumnSector   = "sector"
	ColumnPAL      = "pal"
	ColumnExposure = "exposure"
	ColumnTicker   = "ticker"
	ColumnReturn   = "return"
	ColumnRowID    = "rowid"
	ColumnOpenLiq  = "open_liq"

	// DefaultPrecision is the fixed-point precision used when writing
	// monetary columns.
	DefaultPrecision = 16
)

// RequiredColumns are the input columns every blotter file must carry.
// ColumnTicker is optional and imputed when absent.
var RequiredColumns = []string{
	ColumnLKID, ColumnDate, ColumnAnalyst, ColumnSector, ColumnPAL, ColumnExposure,
}

// DefaultStepNames is the standard blotter pipeline, in order.
var DefaultStepNames = []string{
	StepCreateKeys,
	StepNormalize,
	StepImputeTicker,
	StepOpenLiquidity,
	StepFundValue,
	StepAggregateDaily,
}

// DefaultOutputColumns are written when the configuration names none.
var DefaultOutputColumns = []string{
	ColumnLKID, ColumnDate, ColumnAnalyst, ColumnSector, ColumnPAL, ColumnExposure, ColumnReturn,
}

// Config is the .blotter.yaml run-configuration format.
type Config struct {
	Eager    *bool        `yaml:"eager"`
	Pipeline []StepConfig `yaml:"pipeline"`
	Output   OutputConfig `yaml:"output"`

	// Set by the loader, not from YAML.
	Dir      string `yaml:"-"`
	FilePath string `yaml:"-"`
}

// StepConfig selects a registered step by name.
type StepConfig struct {
	Name string `yaml:"name"`
}

// OutputConfig controls the written file.
type OutputConfig struct {
	Columns   []string `yaml:"columns"`
	Precision *int     `yaml:"precision"`
}

// Default returns the configuration used when no file is given: the full
// pipeline, eager execution, standard output columns.
func Default() *Config {
	steps := make([]StepConfig, len(DefaultStepNames))
	for i, name := range DefaultStepNames {
		steps[i] = StepConfig{Name: name}
	}
	return &Config{Pipeline: steps}
}

// IsEager reports the configured discipline; eager is the default.
func (c *Config) IsEager() bool {
	return c.Eager == nil || *c.Eager
}

// OutputColumns returns the configured output columns or the default set.
func (c *Config) OutputColumns() []string {
	if len(c.Output.Columns) == 0 {
		return DefaultOutputColumns
	}
	return c.Output.Columns
}

// Precision returns the configured fixed-point output precision.
func (c *Config) Precision() int {
	if c.Output.Precision == nil {
		return DefaultPrecision
	}
	return *c.Output.Precision
}
