// Package orchestrator sequences content generation and analysis for one
// submission at a time and exposes the combined observable state.
package orchestrator

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

// User-facing Vietnamese messages. Generation failures are deliberately
// indistinguishable to the user; the error kind is only carried internally.
const (
	MsgMissingFields   = "Vui lòng điền ít nhất Loại hình, Giá và Vị trí."
	msgGenerationError = "Đã có lỗi xảy ra khi tạo nội dung. Vui lòng thử lại."
)

// Generator produces listing content for a property record.
type Generator interface {
	Generate(ctx context.Context, data *types.PropertyData) (*types.GeneratedContent, error)
}

// Analyzer scores generated copy. It never fails: degraded facets are nil.
type Analyzer interface {
	Analyze(ctx context.Context, title, content string) *types.HFAnalysisResult
}

// State is the observable state consumed by the presentation layer.
type State struct {
	LoadingState types.LoadingState      `json:"loadingState"`
	Result       *types.GeneratedContent `json:"result"`
	HFAnalysis   *types.HFAnalysisResult `json:"hfAnalysis"`
	HFLoading    bool                    `json:"hfLoading"`
	Error        string                  `json:"error,omitempty"`
	SubmissionID string                  `json:"submissionId,omitempty"`
}

// Controller drives the two-phase submission state machine. The generation
// axis moves IDLE → LOADING → SUCCESS|ERROR; the analysis axis is the
// HFLoading flag, raised only after generation success.
type Controller struct {
	generator Generator
	analyzer  Analyzer

	mu          sync.Mutex
	state       State
	current     uuid.UUID
	cancel      context.CancelFunc
	subscribers map[chan State]struct{}
}

// New creates a controller in the IDLE state.
func New(generator Generator, analyzer Analyzer) *Controller {
	return &Controller{
		generator:   generator,
		analyzer:    analyzer,
		state:       State{LoadingState: types.StateIdle},
		subscribers: make(map[chan State]struct{}),
	}
}

// Submit starts a new submission. It validates locally, rejects incomplete
// records without any network call, and otherwise kicks off generation in
// the background (fire-and-forget). A new submission supersedes any in-flight
// one: the prior context is cancelled and its late results are discarded.
func (c *Controller) Submit(data types.PropertyData) (uuid.UUID, error) {
	if err := data.Validate(); err != nil {
		c.mu.Lock()
		c.state.Error = MsgMissingFields
		c.publishLocked()
		c.mu.Unlock()
		return uuid.Nil, &ErrIncompleteSubmission{Cause: err}
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.New()
	c.current = id
	c.cancel = cancel

	c.state.LoadingState = types.StateLoading
	c.state.HFLoading = false
	c.state.HFAnalysis = nil
	c.state.Error = ""
	c.state.SubmissionID = id.String()
	c.publishLocked()
	c.mu.Unlock()

	go c.run(ctx, id, data)

	return id, nil
}

// run executes generation then analysis for one submission.
func (c *Controller) run(ctx context.Context, id uuid.UUID, data types.PropertyData) {
	content, err := c.generator.Generate(ctx, &data)

	c.mu.Lock()
	if id != c.current {
		c.mu.Unlock()
		return // superseded while generating
	}
	if err != nil {
		log.Printf("generation failed (submission %s): %v", id, err)
		c.state.LoadingState = types.StateError
		c.state.Error = msgGenerationError + " " + err.Error()
		c.state.HFLoading = false
		c.publishLocked()
		c.mu.Unlock()
		return
	}

	c.state.Result = content
	c.state.LoadingState = types.StateSuccess

	// Analysis only ever runs on non-empty generated content.
	if content.HotDescription == "" {
		c.publishLocked()
		c.mu.Unlock()
		return
	}
	c.state.HFLoading = true
	c.publishLocked()
	c.mu.Unlock()

	result := c.analyzer.Analyze(ctx, content.PrimaryTitle(), content.HotDescription)

	c.mu.Lock()
	defer c.mu.Unlock()
	if id != c.current {
		return // superseded while analyzing
	}
	c.state.HFAnalysis = result
	c.state.HFLoading = false
	c.publishLocked()
}

// Snapshot returns a copy of the current observable state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers a channel receiving state updates. The returned cancel
// function must be called to release the subscription.
func (c *Controller) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 16)
	c.mu.Lock()
	c.subscribers[ch] = struct{}{}
	c.mu.Unlock()

	return ch, func() {
		c.mu.Lock()
		delete(c.subscribers, ch)
		c.mu.Unlock()
	}
}

// publishLocked pushes the current state to subscribers. Slow subscribers
// miss intermediate states rather than blocking the controller.
func (c *Controller) publishLocked() {
	for ch := range c.subscribers {
		select {
		case ch <- c.state:
		default:
		}
	}
}

// Close cancels any in-flight submission.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
