package main

import (
	"github.com/sells-group/icp-autopilot/internal/enrich"
	"github.com/sells-group/icp-autopilot/internal/icp"
	"github.com/sells-group/icp-autopilot/pkg/fullenrich"
	"github.com/sells-group/icp-autopilot/pkg/gemini"
)

// initPipeline builds the enrichment pipeline. Without a FullEnrich key every
// profile is synthesized locally.
func initPipeline() *enrich.Pipeline {
	var client fullenrich.Client
	if cfg.FullEnrich.Key != "" {
		client = fullenrich.NewClient(cfg.FullEnrich.Key, fullenrich.WithBaseURL(cfg.FullEnrich.BaseURL))
	}
	return enrich.NewPipeline(enrich.New(client, nil), cfg.Pipeline.PaceRPS, nil)
}

// initEngine builds the analysis engine. Without a Gemini key every run uses
// the heuristic fallback.
func initEngine() *icp.Engine {
	var client gemini.Client
	if cfg.Gemini.Key != "" {
		client = gemini.NewClient(cfg.Gemini.Key,
			gemini.WithBaseURL(cfg.Gemini.BaseURL),
			gemini.WithModel(cfg.Gemini.Model),
		)
	}
	return icp.NewEngine(client)
}
