package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proto-lab-ro/jobshoplab/jobshop/config"
	"github.com/proto-lab-ro/jobshoplab/jobshop/middleware"
	"github.com/proto-lab-ro/jobshoplab/jobshop/render"
	"github.com/proto-lab-ro/jobshoplab/jobshop/stochastic"
)

var (
	instancePath        string
	seed                int64
	logLevel            string
	truncationJoker     int
	truncationActive    bool
	maxTimeFct          float64
	maxActionFct        float64
	allowEarlyTransport bool
	renderMode          string
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "jobshoplab",
	Short: "Deterministic job-shop scheduling simulation core",
}

// runCmd drives a loaded Instance to completion with a greedy "always
// schedule the offered pairing" policy and prints the resulting history.
// It exists to exercise the core end-to-end from the command line; real
// agent loops are expected to drive jobshop/middleware.Environment
// directly.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an instance to termination or truncation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if instancePath == "" {
			logrus.Fatal("--instance is required")
		}
		data, err := os.ReadFile(instancePath)
		if err != nil {
			logrus.Fatalf("reading instance file: %v", err)
		}
		inst, err := config.Load(data)
		if err != nil {
			logrus.Fatalf("loading instance: %v", err)
		}

		cfg := middleware.Config{
			TruncationJoker:     truncationJoker,
			TruncationActive:    truncationActive,
			MaxTimeFct:          maxTimeFct,
			MaxActionFct:        maxActionFct,
			AllowEarlyTransport: allowEarlyTransport,
		}
		env := middleware.New(inst, cfg, stochastic.NewSimulationKey(seed), "", "", "")

		if _, _, err := env.Reset(); err != nil {
			logrus.Fatalf("reset: %v", err)
		}

		var terminated, truncated bool
		var info map[string]any
		for !terminated && !truncated {
			_, _, terminated, truncated, info, err = env.Step(true)
			if err != nil {
				logrus.Fatalf("step: %v", err)
			}
		}

		logrus.Infof("finished: terminated=%v truncated=%v time=%d info=%v", terminated, truncated, env.State().Time, info)

		out, err := render.History(env.History(), render.Mode(renderMode))
		if err != nil {
			logrus.Fatalf("render: %v", err)
		}
		fmt.Println(out)
	},
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&instancePath, "instance", "", "Path to the instance YAML file")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the partitioned RNG")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&truncationJoker, "truncation-joker", 0, "Number of invalid actions tolerated before truncation")
	runCmd.Flags().BoolVar(&truncationActive, "truncation-active", false, "Whether invalid actions ever trigger truncation")
	runCmd.Flags().Float64Var(&maxTimeFct, "max-time-fct", 0, "Truncate once elapsed time exceeds this factor times the lower bound (0 disables)")
	runCmd.Flags().Float64Var(&maxActionFct, "max-action-fct", 0, "Truncate once action count exceeds this factor times total operations (0 disables)")
	runCmd.Flags().BoolVar(&allowEarlyTransport, "allow-early-transport", true, "Allow transports to commit to jobs not yet at a post-buffer head")
	runCmd.Flags().StringVar(&renderMode, "render", "default", "Render mode: default or debug")

	rootCmd.AddCommand(runCmd)
}
