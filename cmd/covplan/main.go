// Command covplan exposes the coverage path planner as a CLI: plan a
// single job from a JSON file, serve the HTTP API, or watch a directory
// of job files and plan each one as it appears.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "covplan",
		Short: "Coverage path planner for a wall-finishing robot",
	}
	root.AddCommand(newPlanCmd(), newServeCmd(), newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
