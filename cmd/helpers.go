package cmd

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/traindelay/internal/config"
	"github.com/ziadkadry99/traindelay/internal/dataset"
	"github.com/ziadkadry99/traindelay/internal/registry"
	"github.com/ziadkadry99/traindelay/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `traindelay init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newRenderer builds the page renderer and loads the dataset up front so a
// missing or malformed CSV stops the command before anything is served.
func newRenderer(ctx context.Context, cfg *config.Config) (*render.Renderer, *dataset.Dataset, error) {
	reg := registry.Default()
	if err := reg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid registry: %w", err)
	}

	cache := dataset.NewCache(cfg.DataPath)
	ds, err := cache.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading dataset: %w", err)
	}

	r := render.New(reg, cache, render.Options{
		FigsDir:     cfg.FigsDir,
		PreviewRows: cfg.PreviewRows,
		Placeholder: cfg.Placeholder,
		Verbose:     verbose,
	})
	return r, ds, nil
}
