package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/shinyyama/street-transform/internal/ai"
	"github.com/shinyyama/street-transform/internal/config"
	"github.com/shinyyama/street-transform/internal/knowledge"
	"github.com/shinyyama/street-transform/internal/model"
	"github.com/shinyyama/street-transform/internal/preset"
	"github.com/shinyyama/street-transform/internal/reqctx"
	"github.com/shinyyama/street-transform/internal/service"
	"github.com/shinyyama/street-transform/internal/storage"
)

type Config struct {
	SampleImage    string   `env:"SAMPLE_IMAGE,required"`
	Presets        []string `env:"PRESETS" envSeparator:","`
	UserText       string   `env:"USER_TEXT"`
	OutputDir      string   `env:"OUTPUT_DIR" envDefault:"static"`
	Concurrency    int      `env:"CONCURRENCY" envDefault:"2"`
	TimeoutSeconds int      `env:"TIMEOUT_SECONDS" envDefault:"600"`
}

type rendered struct {
	key      string
	catalog  string
	imageURL string
	err      error
}

func main() {
	_ = godotenv.Load()
	var tool Config
	if err := env.Parse(&tool); err != nil {
		log.Fatalf("failed to parse env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(tool.TimeoutSeconds)*time.Second)
	defer cancel()

	status := ai.Init(ctx, cfg)
	if !status.Ready() {
		log.Fatalf("generative client unavailable: %s", status.Reason())
	}

	image, err := os.ReadFile(tool.SampleImage)
	if err != nil {
		log.Fatalf("failed to read sample image: %v", err)
	}
	store, err := storage.NewLocalStore(tool.OutputDir, "/static")
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	catalog := preset.Default()
	listings := selectListings(catalog.Listings(), tool.Presets)
	if len(listings) == 0 {
		log.Fatalf("no presets matched %v", tool.Presets)
	}
	// Rendering a gallery does not need the knowledge digest.
	svc := service.NewTransformService(catalog, knowledge.Static(""), status, store, cfg.TransformMode)

	results := make([]rendered, len(listings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(tool.Concurrency, 1))
	for i, l := range listings {
		g.Go(func() error {
			log.Printf("processing preset=%s catalog=%s", l.Key, l.Catalog)
			res, err := svc.Transform(reqctx.WithRID(gctx, fmt.Sprintf("render-%02d", i)), model.TransformRequest{
				Filename:     filepath.Base(tool.SampleImage),
				Image:        image,
				CustomPrompt: tool.UserText,
				PresetKey:    l.Key,
				PromptType:   model.PromptTypePreset,
			})
			results[i] = rendered{key: l.Key, catalog: l.Catalog, err: err}
			if err == nil {
				results[i].imageURL = res.ImageURL
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Printf("%-40s %-28s FAILED %v\n", r.key, r.catalog, r.err)
			continue
		}
		fmt.Printf("%-40s %-28s %s\n", r.key, r.catalog, r.imageURL)
	}
	if failed == len(results) {
		log.Fatalf("all %d presets failed", failed)
	}
	log.Printf("done rendered=%d failed=%d", len(results)-failed, failed)
}

func selectListings(all []preset.Listing, keys []string) []preset.Listing {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			want[k] = true
		}
	}
	if len(want) == 0 {
		return all
	}
	var out []preset.Listing
	for _, l := range all {
		if want[l.Key] {
			out = append(out, l)
		}
	}
	return out
}
