package analysis

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/inference"
)

// panicClassifier simulates an analyzer bug.
type panicClassifier struct{}

func (panicClassifier) ClassifySentiment(context.Context, string) ([]inference.Classification, error) {
	panic("boom")
}

// countingPinger records reachability probes.
type countingPinger struct {
	calls atomic.Int32
}

func (p *countingPinger) Ping(context.Context, string) error {
	p.calls.Add(1)
	return nil
}

func TestAnalyzeProducesAllFourFacets(t *testing.T) {
	classifier := &fakeClassifier{classes: []inference.Classification{{Label: "5 stars", Score: 0.9}}}
	extractor := &fakeExtractor{}
	pinger := &countingPinger{}

	pipeline := NewPipeline(classifier, extractor, pinger)
	result := pipeline.Analyze(context.Background(), "Bán nhà đẹp", longContent(120))

	require.NotNil(t, result)
	assert.NotNil(t, result.Quality)
	assert.NotNil(t, result.SEO)
	assert.NotNil(t, result.Grammar)
	assert.NotNil(t, result.Readability)
}

func TestAnalyzeIssuesOneCallPerRemoteAnalyzer(t *testing.T) {
	classifier := &fakeClassifier{classes: []inference.Classification{{Label: "4 stars", Score: 0.9}}}
	extractor := &fakeExtractor{}
	pinger := &countingPinger{}

	pipeline := NewPipeline(classifier, extractor, pinger)
	pipeline.Analyze(context.Background(), "tiêu đề", longContent(120))

	assert.Equal(t, 1, classifier.calls)
	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, int32(1), pinger.calls.Load())
}

func TestAnalyzePanicOnlyDropsOwnFacet(t *testing.T) {
	pipeline := NewPipeline(panicClassifier{}, &fakeExtractor{}, nil)
	result := pipeline.Analyze(context.Background(), "tiêu đề", longContent(120))

	require.NotNil(t, result)
	assert.Nil(t, result.Quality)
	assert.NotNil(t, result.SEO)
	assert.NotNil(t, result.Grammar)
	assert.NotNil(t, result.Readability)
}

func TestAnalyzeFullyDegradedStillSettles(t *testing.T) {
	// Every remote dependency is down; all facets must still be present,
	// built from heuristics only.
	classifier := &fakeClassifier{err: context.DeadlineExceeded}
	extractor := &fakeExtractor{err: context.DeadlineExceeded}

	pipeline := NewPipeline(classifier, extractor, nil)
	result := pipeline.Analyze(context.Background(), "tiêu đề", longContent(120))

	require.NotNil(t, result.Quality)
	assert.Equal(t, 70, result.Quality.Score)
	assert.NotNil(t, result.SEO)
	assert.NotNil(t, result.Grammar)
	assert.NotNil(t, result.Readability)
}
