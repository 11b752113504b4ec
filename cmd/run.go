package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/plogic/formatter"
	"github.com/gnolang/plogic/scenario"
)

var (
	runJsonOutput bool
	runOutPath    string
	watch         bool
)

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Evaluate scenario files",
	Long: `Evaluates every statement, quantifier and agent check in the given scenario
files or directories. With no paths, the --config file (default .plogic.yaml) is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		paths := args
		if len(paths) == 0 {
			paths = []string{scenarioPath()}
		}

		engine := scenario.NewEngine()

		if watch {
			dir, err := watchTarget(paths)
			if err != nil {
				logger.Error("Invalid --watch target", zap.Error(err))
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			runWatch(ctx, logger, scenario.NewCachedRunner(engine, 0), dir)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		failed, err := runScenarios(ctx, logger, engine, paths, os.Stdout, runJsonOutput, runOutPath)
		if err != nil || failed {
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().BoolVar(&runJsonOutput, "json", false, "Output outcomes in JSON format")
	runCmd.Flags().StringVarP(&runOutPath, "output", "o", "", "Output path (when using JSON)")
	runCmd.Flags().BoolVar(&watch, "watch", false, "Re-run scenario files in a directory when they change")
}

func scenarioPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return scenario.DefaultConfigPath
}

// runScenarios reports whether any outcome failed.
func runScenarios(
	ctx context.Context,
	logger *zap.Logger,
	runner scenario.Runner,
	paths []string,
	w io.Writer,
	isJson bool,
	jsonOutput string,
) (bool, error) {
	outcomes, err := scenario.ProcessFiles(ctx, logger, runner, paths, scenario.ProcessFile)
	if err != nil {
		logger.Error("Error processing scenario files", zap.Error(err))
		return false, err
	}

	failed := false
	for _, o := range outcomes {
		if o.Failed() {
			failed = true
			break
		}
	}

	if err := printOutcomes(w, outcomes, isJson, jsonOutput); err != nil {
		logger.Error("Error writing outcomes", zap.Error(err))
		return failed, err
	}
	return failed, nil
}

func printOutcomes(w io.Writer, outcomes []scenario.Outcome, isJson bool, jsonOutput string) error {
	if !isJson {
		fmt.Fprint(w, formatter.FormatOutcomes(outcomes))
		return nil
	}

	if outcomes == nil {
		outcomes = []scenario.Outcome{}
	}
	d, err := json.Marshal(outcomes)
	if err != nil {
		return fmt.Errorf("marshalling outcomes to JSON: %w", err)
	}
	if jsonOutput == "" {
		fmt.Fprintln(w, string(d))
		return nil
	}
	return os.WriteFile(jsonOutput, d, 0o644)
}

// watchTarget returns the single directory --watch observes.
func watchTarget(paths []string) (string, error) {
	if len(paths) != 1 {
		return "", fmt.Errorf("--watch takes exactly one directory, got %d paths", len(paths))
	}
	info, err := os.Stat(paths[0])
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("--watch needs a directory, %s is a file", paths[0])
	}
	return paths[0], nil
}

func runWatch(ctx context.Context, logger *zap.Logger, runner scenario.Runner, dir string) {
	fmt.Printf("watching %s for scenario changes\n", dir)
	err := scenario.Watch(ctx, logger, runner, dir, func(path string, outcomes []scenario.Outcome, err error) {
		if err != nil {
			logger.Error("Error running scenario", zap.String("file", path), zap.Error(err))
			return
		}
		fmt.Print(formatter.FormatOutcomes(outcomes))
	})
	if err != nil {
		logger.Error("Watcher stopped", zap.Error(err))
		os.Exit(1)
	}
}
