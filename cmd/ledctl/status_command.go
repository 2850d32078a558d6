package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

type statusReport struct {
	SocketPath    string `json:"socket_path"`
	Reachable     bool   `json:"reachable"`
	MockMode      bool   `json:"mock_mode"`
	MatrixSize    string `json:"matrix_size"`
	QueueCapacity string `json:"queue_capacity"`
	LogRetention  string `json:"log_retention"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report coordinator socket reachability and configured panel geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			report := statusReport{
				SocketPath:    cfg.SocketPath(),
				MockMode:      cfg.MockMode,
				MatrixSize:    fmt.Sprintf("%dx%d", cfg.Panel.MatrixCols, cfg.Panel.MatrixRows),
				QueueCapacity: humanize.Comma(int64(cfg.Server.QueueCapacity)),
				LogRetention:  english.Plural(cfg.Logging.RetentionDays, "day", ""),
			}

			client, dialErr := ctx.dialClient()
			if dialErr == nil {
				report.Reachable = true
				client.Close()
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Socket path", report.SocketPath},
				{"Reachable", yesNo(report.Reachable)},
				{"Mock mode", yesNo(report.MockMode)},
				{"Matrix size", report.MatrixSize},
				{"Queue capacity", report.QueueCapacity},
				{"Log retention", report.LogRetention},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
			if !report.Reachable && dialErr != nil {
				fmt.Fprintf(out, "\nnote: %v\n", dialErr)
			}
			return nil
		},
	}
}
