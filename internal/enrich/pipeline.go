package enrich

import (
	"context"
	"math/rand"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/icp-autopilot/internal/model"
)

// Engagement scores skew high so the downstream high-engagement heuristic has
// signal to work with.
const (
	EngagementMin = 60
	EngagementMax = 100
)

const defaultPaceRPS = 10

// ProgressFunc receives the completion percentage after each address, ending
// at 100.
type ProgressFunc func(percent float64)

// Pipeline drives the Enricher strictly sequentially across a batch,
// pacing lookups to keep remote-call load predictable.
type Pipeline struct {
	enricher *Enricher
	limiter  *rate.Limiter
	rng      *rand.Rand
}

// NewPipeline creates a Pipeline. paceRPS <= 0 selects the default pace; rng
// may be nil for a time-seeded source.
func NewPipeline(enricher *Enricher, paceRPS float64, rng *rand.Rand) *Pipeline {
	if paceRPS <= 0 {
		paceRPS = defaultPaceRPS
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Pipeline{
		enricher: enricher,
		limiter:  rate.NewLimiter(rate.Limit(paceRPS), 1),
		rng:      rng,
	}
}

// Run enriches each address in order and returns records in the same order.
// onProgress is invoked exactly once per address with strictly increasing
// percentages. Individual lookups never fail; the only error is a cancelled
// context during the pacing wait.
func (p *Pipeline) Run(ctx context.Context, emails []string, onProgress ProgressFunc) ([]model.EnrichedRecord, error) {
	log := zap.L().With(zap.Int("batch", len(emails)))
	log.Info("enrich: starting batch")
	start := time.Now()

	records := make([]model.EnrichedRecord, 0, len(emails))
	for i, email := range emails {
		if i > 0 {
			if err := p.limiter.Wait(ctx); err != nil {
				return nil, eris.Wrap(err, "enrich: pacing wait")
			}
		}

		rec := p.enricher.Enrich(ctx, email)
		rec.Engagement = EngagementMin + p.rng.Intn(EngagementMax-EngagementMin+1)
		records = append(records, rec)

		if onProgress != nil {
			onProgress(100 * float64(i+1) / float64(len(emails)))
		}
	}

	log.Info("enrich: batch complete", zap.Duration("elapsed", time.Since(start)))
	return records, nil
}
