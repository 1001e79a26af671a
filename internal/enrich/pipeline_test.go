package enrich

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPipelineRun_ProgressAndOrder(t *testing.T) {
	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}

	p := NewPipeline(New(nil, rand.New(rand.NewSource(1))), 1000, rand.New(rand.NewSource(2)))

	var progress []float64
	records, err := p.Run(context.Background(), emails, func(pct float64) {
		progress = append(progress, pct)
	})
	require.NoError(t, err)

	// One callback per address, strictly increasing, ending at 100.
	require.Len(t, progress, len(emails))
	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1])
	}
	assert.InDelta(t, 100.0, progress[len(progress)-1], 0.001)

	// Records preserve input order.
	require.Len(t, records, len(emails))
	for i, email := range emails {
		assert.Equal(t, email, records[i].Email)
	}
}

func TestPipelineRun_AllLookupsFail(t *testing.T) {
	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"}

	client := &mockFullEnrichClient{}
	client.On("Enrich", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	p := NewPipeline(New(client, rand.New(rand.NewSource(3))), 1000, rand.New(rand.NewSource(4)))

	records, err := p.Run(context.Background(), emails, nil)
	require.NoError(t, err)
	require.Len(t, records, 5)

	for _, rec := range records {
		assert.NotEmpty(t, rec.Name)
		assert.NotEmpty(t, rec.Company)
		assert.GreaterOrEqual(t, rec.Engagement, EngagementMin)
		assert.LessOrEqual(t, rec.Engagement, EngagementMax)
	}
}

func TestPipelineRun_EmptyBatch(t *testing.T) {
	p := NewPipeline(New(nil, rand.New(rand.NewSource(1))), 1000, rand.New(rand.NewSource(1)))

	called := false
	records, err := p.Run(context.Background(), nil, func(float64) { called = true })
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.False(t, called)
}

func TestPipelineRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Pace of 1/s forces a limiter wait on the second address, which must
	// observe the cancelled context.
	p := NewPipeline(New(nil, rand.New(rand.NewSource(1))), 1, rand.New(rand.NewSource(1)))

	_, err := p.Run(ctx, []string{"a@x.com", "b@x.com"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pacing wait")
}
