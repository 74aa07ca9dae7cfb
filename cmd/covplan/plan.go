package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wallbot/covplan/api"
	"github.com/wallbot/covplan/planner"
)

func newPlanCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "plan <job.json>",
		Short: "Plan a single coverage job from a JSON file and print the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(args[0], outPath, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the trajectory JSON to this file instead of stdout")

	return cmd
}

func runPlan(jobPath, outPath string, stdout io.Writer) error {
	data, err := os.ReadFile(jobPath)
	if err != nil {
		return fmt.Errorf("read job file: %w", err)
	}

	var req api.PlanRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse job file: %w", err)
	}

	params, err := req.Params.ToCore()
	if err != nil {
		return err
	}
	traj, err := planner.Plan(req.Wall, req.Obstacles, params)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(traj, "", "  ")
	if err != nil {
		return err
	}
	if outPath != "" {
		return os.WriteFile(outPath, out, 0644)
	}
	_, err = stdout.Write(append(out, '\n'))

	return err
}
