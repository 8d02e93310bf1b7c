package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/systemstart/blottertools/pkg/api"
	"github.com/systemstart/blottertools/pkg/logging"
	"github.com/systemstart/blottertools/pkg/processing"
)

var version = "dev"

const (
	_ = iota
	exitInputNotSpecified
	exitDotenvError
	exitInputCheckFailed
	exitConfigLoadFailed
	exitRunFailed
	exitBatchRootNotADirectory
)

var (
	inputPath    string
	outputPath   string
	configFile   string
	disableEager bool
	batchPattern string
	loggingType  string
	logLevel     string
	showVersion  bool
)

func init() {
	flag.StringVar(
		&inputPath,
		"input",
		"",
		"input blotter CSV, or the root directory in batch mode")
	flag.StringVar(
		&outputPath,
		"output",
		"",
		"output CSV (default: blotter-new.csv in the working directory)")
	flag.StringVar(
		&configFile,
		"config",
		"",
		"run configuration YAML (.blotter.yaml)")
	flag.BoolVar(
		&disableEager,
		"disable-eager",
		false,
		"steps mutate copies of the table instead of the table itself")
	flag.StringVar(
		&batchPattern,
		"batch",
		"",
		"batch mode: process every CSV under -input matching this glob (e.g. '**/*.csv')")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	includeEnv()
	checkInput()

	cfg := loadConfig()
	if disableEager {
		eager := false
		cfg.Eager = &eager
	}

	if batchPattern != "" {
		runBatch(cfg)
	} else {
		runSingle(cfg)
	}

	slog.Info("done")
}

func runSingle(cfg *api.Config) {
	out := outputPath
	if out == "" {
		cwd, err := os.Getwd()
		if err != nil {
			slog.Error("failed to resolve working directory", "error", err)
			os.Exit(exitRunFailed)
		}
		out = processing.DefaultOutputPath(cwd)
	}

	if err := processing.RunFile(inputPath, out, cfg); err != nil {
		slog.Error("blotter failed", "input", inputPath, "error", err)
		os.Exit(exitRunFailed)
	}
}

func runBatch(cfg *api.Config) {
	st, err := os.Stat(inputPath)
	if err != nil {
		slog.Error("failed to check batch root", "directory", inputPath, "error", err)
		os.Exit(exitInputCheckFailed)
	}
	if !st.IsDir() {
		slog.Error("-input must be a directory in batch mode", "directory", inputPath)
		os.Exit(exitBatchRootNotADirectory)
	}

	if err := processing.RunBatch(inputPath, batchPattern, cfg); err != nil {
		slog.Error("batch failed", "root", inputPath, "error", err)
		os.Exit(exitRunFailed)
	}
}

func loadConfig() *api.Config {
	if configFile == "" {
		return api.Default()
	}

	cfg, err := api.Load(configFile)
	if err != nil {
		slog.Error("failed to load configuration", "filename", configFile, "error", err)
		os.Exit(exitConfigLoadFailed)
	}
	return cfg
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}

func checkInput() {
	if inputPath == "" {
		slog.Error("-input not set")
		os.Exit(exitInputNotSpecified)
	}

	if _, err := os.Stat(inputPath); err != nil {
		slog.Error("failed to check input path", "path", inputPath, "error", err)
		os.Exit(exitInputCheckFailed)
	}
}
