package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/wallbot/covplan/api"
	"github.com/wallbot/covplan/retention"
	"github.com/wallbot/covplan/store"
)

func newServeCmd() *cobra.Command {
	var dbPath string
	var addr string
	var retentionDays int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(dbPath, addr, retentionDays)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "covplan.db", "path to the SQLite job store")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().IntVar(&retentionDays, "retention-days", 30, "delete jobs older than this many days")

	return cmd
}

func runServe(dbPath, addr string, retentionDays int) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	sched := retention.NewScheduler(db, time.Duration(retentionDays)*24*time.Hour)
	if err := sched.Start("0 3 * * *"); err != nil {
		return err
	}
	defer sched.Stop()

	e := echo.New()
	e.HideBanner = true
	(&api.Server{DB: db}).Register(e)

	return e.Start(addr)
}
