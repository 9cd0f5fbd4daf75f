package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/kzhou57/vizqa/internal/config"
	"github.com/kzhou57/vizqa/internal/gate"
	"github.com/kzhou57/vizqa/internal/gen"
	"github.com/kzhou57/vizqa/internal/heuristics"
	"github.com/kzhou57/vizqa/internal/outcome"
	"github.com/kzhou57/vizqa/internal/pipeline"
	"github.com/kzhou57/vizqa/internal/profile"
	"github.com/kzhou57/vizqa/internal/sandbox"
)

// #region main
func main() {
	configPath := flag.String("config", "vizqa.toml", "path to run configuration")
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

	prof, err := dataset.Profile()
	if err != nil {
		log.Fatalf("profile dataset: %v", err)
	}
	log.Printf("[MAIN] dataset %s: %d numeric, %d categorical, %d datetime columns",
		cfg.Paths.Dataset, len(prof.NumericColumns), len(prof.CategoricalColumns), len(prof.DatetimeColumns))

	execClient, err := sandbox.NewExecClient(cfg.Paths.ExecutorAddr)
	if err != nil {
		log.Fatalf("executor client: %v", err)
	}
	defer execClient.Close()

	store, err := outcome.Open(cfg.Paths.OutcomeDB)
	if err != nil {
		log.Fatalf("open outcome store: %v", err)
	}
	defer store.Close()

	if err := os.MkdirAll(cfg.Paths.ImageDir, 0o755); err != nil {
		log.Fatalf("create image dir: %v", err)
	}

	runID := uuid.NewString()
	err = store.RecordRun(outcome.RunRecord{
		ID:          runID,
		DatasetPath: cfg.Paths.Dataset,
		ChartType:   cfg.Generation.ChartType,
	})
	if err != nil {
		log.Fatalf("record run: %v", err)
	}

	pipe := pipeline.New(runID, dataset, prof, client,
		pipeline.ExecAdapter{Client: execClient}, store,
		pipeline.Params{
			ChartType:      gate.ChartType(cfg.Generation.ChartType),
			BatchSize:      cfg.Generation.BatchSize,
			OutputSize:     cfg.Generation.OutputSize,
			MaxRetries:     cfg.Generation.MaxRetries,
			GenModel:       cfg.Models.Generation,
			ImageDir:       cfg.Paths.ImageDir,
			QAPairsPath:    cfg.Paths.QAPairs,
			AttemptTimeout: cfg.Generation.AttemptTimeoutDuration(),
		})

	ctx := context.Background()

	artifact, err := pipe.GenerateChartCode(ctx)
	if err != nil {
		log.Printf("[MAIN] chart code generation: %v", err)
	}
	printResult("chart", pipe.EvaluateChartArtifact(ctx, artifact))

	sample, err := dataset.Head(cfg.Generation.BatchSize)
	if err != nil {
		log.Fatalf("sample dataset: %v", err)
	}
	pairs, err := pipe.GenerateQAPairs(ctx, sample)
	if err != nil {
		log.Printf("[MAIN] qa pair generation: %v", err)
	}
	printResult("qa", pipe.EvaluateQASet(sample, pairs))

	fmt.Printf("run %s complete\n", runID)
}

// #endregion main

// #region output
func printResult(label string, res heuristics.Result) {
	keys := make([]string, 0, len(res.Scores))
	for k := range res.Scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%s evaluation:\n", label)
	for _, k := range keys {
		fmt.Printf("  %-13s %.2f\n", k, res.Scores[k])
	}
	for _, c := range res.Comments {
		fmt.Printf("  note: %s\n", c)
	}
}

// #endregion output
