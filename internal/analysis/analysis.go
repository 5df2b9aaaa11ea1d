// Package analysis scores generated listing copy: persuasive quality, SEO
// keyword use, common typos and readability. Every analyzer degrades to
// heuristic-only output when the remote inference service is unreachable;
// the pipeline never fails outward.
package analysis

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/inference"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

// SentimentClassifier returns class labels with confidences for a text.
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) ([]inference.Classification, error)
}

// EntityExtractor returns recognized named-entity spans for a text.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) ([]inference.Entity, error)
}

// Pinger confirms the inference service is reachable. It is a side-effect
// probe only; no analyzer output depends on it.
type Pinger interface {
	Ping(ctx context.Context, sample string) error
}

// Pipeline runs the four analyzers concurrently and aggregates their facets.
type Pipeline struct {
	classifier SentimentClassifier
	extractor  EntityExtractor
	pinger     Pinger
}

// NewPipeline creates a pipeline with explicit collaborators.
func NewPipeline(classifier SentimentClassifier, extractor EntityExtractor, pinger Pinger) *Pipeline {
	return &Pipeline{classifier: classifier, extractor: extractor, pinger: pinger}
}

// New creates a pipeline backed by a single inference client.
func New(client *inference.Client) *Pipeline {
	return NewPipeline(client, client, client)
}

// Analyze runs the four analyzers as a fan-out and waits for all of them.
// The aggregate is atomic: no facet is visible before every analyzer has
// settled. A panicking analyzer only nils its own facet.
func (p *Pipeline) Analyze(ctx context.Context, title, content string) *types.HFAnalysisResult {
	result := &types.HFAnalysisResult{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result.Quality = recovered("quality", func() *types.ContentQualityResult {
			return CheckContentQuality(gCtx, p.classifier, content)
		})
		return nil
	})

	g.Go(func() error {
		result.SEO = recovered("seo", func() *types.SEOKeywordResult {
			return AnalyzeSEOKeywords(gCtx, p.extractor, title, content)
		})
		return nil
	})

	g.Go(func() error {
		result.Grammar = recovered("grammar", func() *types.ErrorDetectionResult {
			return DetectAndFixErrors(content)
		})
		return nil
	})

	g.Go(func() error {
		result.Readability = recovered("readability", func() *types.ReadabilityResult {
			return ImproveReadability(content)
		})
		// Reachability probe, decoupled from scoring. The result is ignored.
		if p.pinger != nil {
			if err := p.pinger.Ping(gCtx, firstRunes(content, 100)); err != nil {
				log.Printf("inference health probe failed: %v", err)
			}
		}
		return nil
	})

	_ = g.Wait() // analyzers never return errors

	return result
}

// recovered shields the pipeline from a panicking analyzer: the facet is
// dropped, the other three survive.
func recovered[T any](name string, fn func() *T) (out *T) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analyzer %s panicked: %v", name, r)
			out = nil
		}
	}()
	return fn()
}

// firstRunes returns the first n runes of s.
func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
