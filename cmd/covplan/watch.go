package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory for new job JSON files and plan each one as it appears",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], outDir, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory to write resulting trajectory JSON into (defaults to the watched directory)")

	return cmd
}

func runWatch(dir, outDir string, stdout, stderr io.Writer) error {
	if outDir == "" {
		outDir = dir
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	fmt.Fprintf(stdout, "watching %s for job files\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			outPath := outDir + "/" + strings.TrimSuffix(baseName(event.Name), ".json") + ".trajectory.json"
			if err := runPlan(event.Name, outPath, stdout); err != nil {
				fmt.Fprintf(stderr, "plan %s: %v\n", event.Name, err)
			} else {
				fmt.Fprintf(stdout, "planned %s -> %s\n", event.Name, outPath)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(stderr, "watcher error: %v\n", err)
		}
	}
}

func baseName(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}

	return path[i+1:]
}
