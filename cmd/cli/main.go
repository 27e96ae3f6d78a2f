package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dvloznov/savings-projector/internal/domain"
	"github.com/dvloznov/savings-projector/internal/logger"
	"github.com/dvloznov/savings-projector/internal/pipeline"
	"github.com/rs/zerolog"
)

// Offline companion to the API server: runs the same projection pipeline
// against a request saved as a JSON file.

func main() {
	log := logger.NewWithLevel(os.Getenv("LOG_LEVEL"))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "project":
		runProject(log)
	case "filter":
		runFilter(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Savings Projector CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  project   Project returns for a returns-request JSON file")
	fmt.Println("  filter    Apply period rules to a filter-request JSON file")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

// requestFile mirrors the API request schemas; the union of both covers the
// project and filter commands.
type requestFile struct {
	Age          int                       `json:"age"`
	Wage         float64                   `json:"wage"`
	Inflation    float64                   `json:"inflation"`
	Q            []domain.OverridePeriod   `json:"q"`
	P            []domain.BonusPeriod      `json:"p"`
	K            []domain.EvaluationPeriod `json:"k"`
	Transactions []domain.Transaction      `json:"transactions"`
}

func runProject(log zerolog.Logger) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	file := fs.String("file", "", "Path to a returns-request JSON file")
	presetName := fs.String("preset", "nps", "Projection preset: nps or index")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	var preset pipeline.Preset
	switch *presetName {
	case "nps":
		preset = pipeline.PresetNPS
	case "index":
		preset = pipeline.PresetIndex
	default:
		log.Fatal().Str("preset", *presetName).Msg("Unknown preset, use nps or index")
	}

	req := readRequest(log, *file)

	engine := pipeline.New(log)
	result := engine.CalculateReturns(pipeline.ReturnsInput{
		Transactions:      req.Transactions,
		OverridePeriods:   req.Q,
		BonusPeriods:      req.P,
		EvaluationPeriods: req.K,
		Age:               req.Age,
		Wage:              req.Wage,
		InflationPercent:  req.Inflation,
	}, preset)

	printJSON(log, result)
}

func runFilter(log zerolog.Logger) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	file := fs.String("file", "", "Path to a filter-request JSON file")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	req := readRequest(log, *file)

	engine := pipeline.New(log)
	result := engine.FilterByPeriods(req.Transactions, req.Q, req.P, req.K)

	printJSON(log, result)
}

func readRequest(log zerolog.Logger, path string) requestFile {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to read request file")
	}

	var req requestFile
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to parse request file")
	}
	return req
}

func printJSON(log zerolog.Logger, v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}
}
