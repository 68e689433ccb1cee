package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/export"
	"github.com/danielokoye/ehr-segmenter/internal/pipeline"
	"github.com/danielokoye/ehr-segmenter/internal/repository"
	"github.com/danielokoye/ehr-segmenter/internal/segment"
)

var (
	inputPath  string
	outputPath string
	xlsxOut    bool
	dbPath     string
	configPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Segment one document and write the review output",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		logger := slog.Default()

		cfg := segment.DefaultConfig()
		if configPath != "" {
			var err error
			if cfg, err = segment.LoadConfig(configPath); err != nil {
				return common.WrapError(err, "load config")
			}
		}

		proc := pipeline.NewProcessor(nil, nil, cfg, logger)
		if dbPath != "" {
			db, err := repository.Open(ctx, repository.Config{Path: dbPath}, logger)
			if err != nil {
				return err
			}
			defer repository.Close(db, logger)
			proc.Jobs = repository.NewJobRepository(db, logger)
			proc.Pages = repository.NewPageRepository(db, logger)
		}

		logger.Info("segmenting document", "input", inputPath)
		res, err := proc.Run(ctx, inputPath)
		if err != nil {
			return err
		}
		logger.Info("segmentation complete",
			"pages", len(res.Pages),
			"records", res.Records,
		)

		svc := export.NewService(logger)
		if xlsxOut {
			data, err := svc.WriteXLSX(res.Pages)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return common.WrapError(err, "write output")
			}
		} else {
			f, err := os.Create(outputPath)
			if err != nil {
				return common.WrapError(err, "create output")
			}
			defer f.Close()
			if err := svc.WriteCSV(f, res.Pages); err != nil {
				return err
			}
		}
		logger.Info("output written", "output", outputPath)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "", "Input document path (pdf or txt)")
	runCmd.Flags().StringVar(&outputPath, "output", "output.csv", "Output file path")
	runCmd.Flags().BoolVar(&xlsxOut, "xlsx", false, "Write an XLSX workbook instead of CSV")
	runCmd.Flags().StringVar(&dbPath, "db", "", "Optional SQLite database to record the job and pages")
	runCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML file overriding segmentation thresholds")
	_ = runCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(runCmd)
}
