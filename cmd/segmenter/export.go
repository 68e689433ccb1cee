package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/export"
	"github.com/danielokoye/ehr-segmenter/internal/repository"
)

var (
	exportDBPath string
	exportJobID  string
	exportOutput string
	exportXLSX   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-export a stored job, or list stored jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		logger := slog.Default()

		db, err := repository.Open(ctx, repository.Config{Path: exportDBPath}, logger)
		if err != nil {
			return err
		}
		defer repository.Close(db, logger)
		jobs := repository.NewJobRepository(db, logger)

		if exportJobID == "" {
			all, err := jobs.List(ctx)
			if err != nil {
				return err
			}
			for _, j := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s  pages=%-4d records=%-4d %s\n",
					j.ID, j.Status, j.PageCount, j.RecordCount, j.SourcePath)
			}
			return nil
		}

		id, err := uuid.Parse(exportJobID)
		if err != nil {
			return common.WrapError(err, "parse job id")
		}
		if _, err := jobs.GetByID(ctx, id); err != nil {
			return err
		}
		pages, err := repository.NewPageRepository(db, logger).ListByJob(ctx, id)
		if err != nil {
			return err
		}

		svc := export.NewService(logger)
		if exportXLSX {
			data, err := svc.WriteXLSX(pages)
			if err != nil {
				return err
			}
			return os.WriteFile(exportOutput, data, 0o644)
		}
		f, err := os.Create(exportOutput)
		if err != nil {
			return common.WrapError(err, "create output")
		}
		defer f.Close()
		return svc.WriteCSV(f, pages)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDBPath, "db", "segmenter.db", "SQLite database path")
	exportCmd.Flags().StringVar(&exportJobID, "job", "", "Job ID to export (omit to list jobs)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "output.csv", "Output file path")
	exportCmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "Write an XLSX workbook instead of CSV")

	rootCmd.AddCommand(exportCmd)
}
