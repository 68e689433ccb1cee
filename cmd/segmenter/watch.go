package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/export"
	"github.com/danielokoye/ehr-segmenter/internal/ingest"
	"github.com/danielokoye/ehr-segmenter/internal/pipeline"
	"github.com/danielokoye/ehr-segmenter/internal/repository"
	"github.com/danielokoye/ehr-segmenter/internal/segment"
)

var (
	watchDirs        []string
	watchOutputDir   string
	watchDBPath      string
	watchConfigPath  string
	watchInitialScan bool
	watchDebounce    time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch directories and segment documents as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		cfg := segment.DefaultConfig()
		if watchConfigPath != "" {
			var err error
			if cfg, err = segment.LoadConfig(watchConfigPath); err != nil {
				return common.WrapError(err, "load config")
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		proc := pipeline.NewProcessor(nil, nil, cfg, logger)
		if watchDBPath != "" {
			db, err := repository.Open(ctx, repository.Config{Path: watchDBPath}, logger)
			if err != nil {
				return err
			}
			defer repository.Close(db, logger)
			proc.Jobs = repository.NewJobRepository(db, logger)
			proc.Pages = repository.NewPageRepository(db, logger)
		}
		svc := export.NewService(logger)

		paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       watchDirs,
			InitialScan: watchInitialScan,
			Debounce:    watchDebounce,
		})
		if err != nil {
			return err
		}
		logger.Info("watching for documents", "roots", watchDirs)

		for {
			select {
			case <-ctx.Done():
				logger.Info("shutting down")
				return nil
			case err, ok := <-watchErrs:
				if ok && err != nil {
					logger.Error("watcher error", "err", err)
				}
			case path, ok := <-paths:
				if !ok {
					return nil
				}
				res, err := proc.Run(ctx, path)
				if err != nil {
					logger.Error("segmentation failed", "path", path, "err", err)
					continue
				}
				base := filepath.Base(path)
				out := filepath.Join(watchOutputDir, base[:len(base)-len(filepath.Ext(base))]+".csv")
				f, err := os.Create(out)
				if err != nil {
					logger.Error("creating output file", "path", out, "err", err)
					continue
				}
				err = svc.WriteCSV(f, res.Pages)
				_ = f.Close()
				if err != nil {
					logger.Error("writing output", "path", out, "err", err)
					continue
				}
				logger.Info("document segmented",
					"path", path,
					"pages", len(res.Pages),
					"records", res.Records,
					"output", out,
				)
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringSliceVar(&watchDirs, "dir", nil, "Directory to watch (repeatable)")
	watchCmd.Flags().StringVar(&watchOutputDir, "output-dir", ".", "Directory for review output files")
	watchCmd.Flags().StringVar(&watchDBPath, "db", "", "Optional SQLite database to record jobs and pages")
	watchCmd.Flags().StringVar(&watchConfigPath, "config", "", "Optional YAML file overriding segmentation thresholds")
	watchCmd.Flags().BoolVar(&watchInitialScan, "initial-scan", true, "Process files already present at startup")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "Coalesce rapid filesystem events")
	_ = watchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(watchCmd)
}
