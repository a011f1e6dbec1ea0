package main

import (
	"flag"
	"fmt"
	stlog "log" // Standard log for errors before the logger is ready
	"os"

	"github.com/bethropolis/tidebuf/internal/app"
	"github.com/bethropolis/tidebuf/internal/config"
	"github.com/bethropolis/tidebuf/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(config.AppName, flag.ExitOnError)
	positional, err := flags.Parse(args)
	if err != nil {
		stlog.Printf("Error parsing flags: %v", err)
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return 0
	}
	if len(positional) > 1 {
		stlog.Printf("Too many arguments: %v (expected at most one input file)", positional)
		return 2
	}
	var inputPath string
	if len(positional) == 1 {
		inputPath = positional[0]
	}

	// --- Configuration ---
	logger.SetDebugFilter(*flags.DebugLog)
	result, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Failed to load configuration: %v", err)
		return 1
	}
	cfg := result.Config

	// --- Logger Initialization ---
	logOutput, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Printf("%v", err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)
	result.Report()
	if inputPath != "" {
		logger.Debugf("Input file: %s", inputPath)
	}

	// --- Create and Run App ---
	tidebuf, err := app.NewApp(app.Options{
		Config:     cfg,
		InputPath:  inputPath,
		OutputPath: *flags.OutputPath,
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	if err := tidebuf.Run(); err != nil {
		logger.Errorf("Session ended with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
