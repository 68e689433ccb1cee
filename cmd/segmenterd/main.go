package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/danielokoye/ehr-segmenter/constants"
	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/export"
	"github.com/danielokoye/ehr-segmenter/internal/ingest"
	"github.com/danielokoye/ehr-segmenter/internal/pipeline"
	"github.com/danielokoye/ehr-segmenter/internal/repository"
	"github.com/danielokoye/ehr-segmenter/internal/segment"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Env
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if len(cfg.Watch.Roots) == 0 {
		log.Fatal("SEGMENTER_WATCH_DIRS env var is required")
	}

	segCfg := segment.DefaultConfig()
	if path := os.Getenv("SEGMENTER_CONFIG"); path != "" {
		var err error
		if segCfg, err = segment.LoadConfig(path); err != nil {
			log.Fatalf("loading segmentation config: %v", err)
		}
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := repository.Open(ctx, repository.Config{
		Path:        cfg.Database.Path,
		DialTimeout: cfg.Database.DialTimeout,
	}, nil)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repository.Close(db, nil)

	proc := pipeline.NewProcessor(
		repository.NewJobRepository(db, nil),
		repository.NewPageRepository(db, nil),
		segCfg,
		nil,
	)
	svc := export.NewService(nil)

	paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Watch.Roots,
		AllowedExts: constants.AllowedExtensions,
		InitialScan: cfg.Watch.InitialScan,
		Debounce:    cfg.Watch.Debounce,
	})
	if err != nil {
		log.Fatalf("starting watcher: %v", err)
	}
	log.Infow("watching for documents", "roots", cfg.Watch.Roots)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down...")
			fmt.Println("stopped.")
			return
		case err, ok := <-watchErrs:
			if ok && err != nil {
				log.Errorw("watcher error", "error", err)
			}
		case path, ok := <-paths:
			if !ok {
				return
			}
			res, err := proc.Run(ctx, path)
			if err != nil {
				log.Errorw("segmentation failed", "path", path, "error", err)
				continue
			}
			out := filepath.Join(cfg.Export.OutputDir, res.JobID.String()+".csv")
			f, err := os.Create(out)
			if err != nil {
				log.Errorw("creating output file", "path", out, "error", err)
				continue
			}
			if err := svc.WriteCSV(f, res.Pages); err != nil {
				log.Errorw("writing output", "path", out, "error", err)
			}
			_ = f.Close()
			log.Infow("document segmented",
				"path", path,
				"job_id", res.JobID,
				"pages", len(res.Pages),
				"records", res.Records,
				"output", out,
			)
		}
	}
}
