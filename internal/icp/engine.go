// Package icp derives ranked ideal-customer-profile segments from enriched
// contact records.
package icp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/icp-autopilot/internal/model"
	"github.com/sells-group/icp-autopilot/pkg/gemini"
)

// ErrNoRecords is returned when analysis is requested on an empty record set.
var ErrNoRecords = eris.New("icp: no records to analyze")

const (
	segmentCount  = 3
	minConfidence = 75
	maxConfidence = 95
	minTags       = 4
	maxTags       = 6
)

// analysisResponse is the JSON contract requested from the language model.
type analysisResponse struct {
	ICPs []segmentPayload `json:"icps"`
}

type segmentPayload struct {
	Name              string   `json:"name"`
	Confidence        int      `json:"confidence"`
	Tags              []string `json:"tags"`
	WhyPerforms       string   `json:"whyPerforms"`
	WhoToDeprioritize string   `json:"whoToDeprioritize"`
}

// Engine produces exactly three ranked ICP segments per run. A nil client
// always takes the heuristic path.
type Engine struct {
	client gemini.Client
}

// NewEngine creates an Engine backed by the given generative client.
func NewEngine(client gemini.Client) *Engine {
	return &Engine{client: client}
}

// Analyze returns three segments ranked descending by confidence, with IsTop
// set on the first. Remote failures of any kind fall back to the in-process
// heuristic; the only outward error is ErrNoRecords on empty input.
func (e *Engine) Analyze(ctx context.Context, records []model.EnrichedRecord) ([]model.ICPSegment, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	if e.client != nil {
		segments, err := e.remote(ctx, records)
		if err == nil {
			return segments, nil
		}
		zap.L().Warn("icp: remote analysis failed, using heuristic fallback", zap.Error(err))
	}

	return fallback(records), nil
}

func (e *Engine) remote(ctx context.Context, records []model.EnrichedRecord) ([]model.ICPSegment, error) {
	text, err := e.client.GenerateContent(ctx, buildPrompt(records))
	if err != nil {
		return nil, err
	}

	var parsed analysisResponse
	if err := json.Unmarshal([]byte(stripFences(text)), &parsed); err != nil {
		return nil, eris.Wrap(err, "icp: parse analysis response")
	}

	return finalize(parsed.ICPs)
}

// finalize validates the model's segments against the contract, clamps
// confidence into range, and ranks them.
func finalize(payloads []segmentPayload) ([]model.ICPSegment, error) {
	if len(payloads) != segmentCount {
		return nil, eris.Errorf("icp: expected %d segments, got %d", segmentCount, len(payloads))
	}

	segments := make([]model.ICPSegment, 0, segmentCount)
	for _, p := range payloads {
		if p.Name == "" {
			return nil, eris.New("icp: segment missing name")
		}
		if len(p.Tags) < minTags || len(p.Tags) > maxTags {
			return nil, eris.Errorf("icp: segment %q has %d tags, want %d-%d", p.Name, len(p.Tags), minTags, maxTags)
		}
		segments = append(segments, model.ICPSegment{
			Name:              p.Name,
			Confidence:        clampConfidence(p.Confidence),
			Tags:              p.Tags,
			WhyPerforms:       p.WhyPerforms,
			WhoToDeprioritize: p.WhoToDeprioritize,
		})
	}

	return rank(segments), nil
}

// rank orders segments descending by confidence, assigns stable IDs, and
// flags the first as top.
func rank(segments []model.ICPSegment) []model.ICPSegment {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Confidence > segments[j].Confidence
	})
	for i := range segments {
		segments[i].ID = fmt.Sprintf("icp-%d", i+1)
		segments[i].IsTop = i == 0
	}
	return segments
}

func clampConfidence(c int) int {
	if c < minConfidence {
		return minConfidence
	}
	if c > maxConfidence {
		return maxConfidence
	}
	return c
}

// stripFences removes markdown code-fence markers the model sometimes wraps
// around its JSON output.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
