package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kzhou57/vizqa/internal/config"
	"github.com/kzhou57/vizqa/internal/gen"
	"github.com/kzhou57/vizqa/internal/judge"
	"github.com/kzhou57/vizqa/internal/outcome"
	"github.com/kzhou57/vizqa/internal/profile"
	"github.com/kzhou57/vizqa/internal/qaset"
)

// #region main
func main() {
	configPath := flag.String("config", "vizqa.toml", "path to run configuration")
	runID := flag.String("run", "", "run id to attach verdicts to (default: new id)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	apiKey, err := config.APIKey()
	if err != nil {
		log.Fatalf("api key: %v", err)
	}
	client, err := gen.NewClient(apiKey)
	if err != nil {
		log.Fatalf("generation client: %v", err)
	}

	dataset, err := profile.Open(cfg.Paths.Dataset)
	if err != nil {
		log.Fatalf("open dataset: %v", err)
	}
	defer dataset.Close()

	sample, err := dataset.Head(cfg.Generation.BatchSize)
	if err != nil {
		log.Fatalf("sample dataset: %v", err)
	}

	pairs, err := qaset.ReadFile(cfg.Paths.QAPairs)
	if err != nil {
		log.Fatalf("load qa pairs: %v", err)
	}

	store, err := outcome.Open(cfg.Paths.OutcomeDB)
	if err != nil {
		log.Fatalf("open outcome store: %v", err)
	}
	defer store.Close()

	id := *runID
	if id == "" {
		id = uuid.NewString()
	}

	j := judge.New(client, cfg.Models.Judge)
	verdicts, err := j.JudgeAll(context.Background(), cfg.Paths.ImageDir, sample, pairs)
	if err != nil {
		log.Fatalf("judge sweep: %v", err)
	}

	var report strings.Builder
	failed := 0
	for _, v := range verdicts {
		if v.Failed() {
			failed++
		}
		err := store.RecordVerdict(outcome.VerdictRecord{
			RunID: id,
			Image: v.Image,
			Text:  v.Text,
		})
		if err != nil {
			log.Printf("[JUDGE] record verdict for %s: %v", v.Image, err)
		}
		fmt.Fprintf(&report, "=== %s ===\n%s\n\n", v.Image, v.Text)
	}
	fmt.Print(report.String())

	reportPath := filepath.Join(cfg.Paths.ImageDir, "verdicts.txt")
	if err := os.WriteFile(reportPath, []byte(report.String()), 0o644); err != nil {
		log.Printf("[JUDGE] write verdict report: %v", err)
	}

	fmt.Printf("judged %d images (%d failed calls), run %s\n", len(verdicts), failed, id)
}

// #endregion main
