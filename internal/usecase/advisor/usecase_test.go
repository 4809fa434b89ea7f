package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/infrastructure/prompts"
	"business-advisor/internal/usecase/contextbuilder"
	"business-advisor/internal/usecase/debate"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                      {}
func (nopLogger) Info(string, ...any)                       {}
func (nopLogger) Warn(string, ...any)                       {}
func (nopLogger) Error(string, ...any)                      {}
func (l nopLogger) WithField(string, any) output.LoggerPort { return l }
func (nopLogger) Close() error                              { return nil }

const validVerdict = `Pros: Solid cooking and a welcoming room.
Cons: Peak hours get loud and slow.
Our verdict: A safe pick for a casual dinner.`

type fakeData struct {
	metadata *entity.BusinessMetadata
	reviews  entity.ReviewSet
	mdErr    error
}

func (f *fakeData) FetchBusinessMetadata(ctx context.Context, id string) (*entity.BusinessMetadata, error) {
	if f.mdErr != nil {
		return nil, f.mdErr
	}
	return f.metadata, nil
}

func (f *fakeData) FetchReviews(ctx context.Context, id string, limit int) (entity.ReviewSet, error) {
	if len(f.reviews) > limit {
		return f.reviews[:limit], nil
	}
	return f.reviews, nil
}

func (f *fakeData) SearchByQuery(ctx context.Context, query string) ([]entity.SearchHit, error) {
	return nil, nil
}

type fakeSummarizer struct {
	positives []string
	negatives []string
	calls     int
}

func (f *fakeSummarizer) SummarizeTypicalExperience(ctx context.Context, md entity.BusinessMetadata) ([]string, []string, error) {
	f.calls++
	return f.positives, f.negatives, nil
}

// recordingLLM echoes canned advocate text and scripted judge responses
// while keeping every request for inspection.
type recordingLLM struct {
	mu         sync.Mutex
	requests   []output.ChatRequest
	judge      []string
	judgeCalls int
}

func (r *recordingLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)

	switch req.Messages[0].Content {
	case prompts.InstructionForRole(entity.RoleOptimist):
		return &output.ChatResponse{Content: "Strengths stand out."}, nil
	case prompts.InstructionForRole(entity.RoleCritic):
		return &output.ChatResponse{Content: "Weaknesses stand out."}, nil
	default:
		idx := r.judgeCalls
		if idx >= len(r.judge) {
			idx = len(r.judge) - 1
		}
		r.judgeCalls++
		return &output.ChatResponse{Content: r.judge[idx]}, nil
	}
}

func (r *recordingLLM) userContents() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, req := range r.requests {
		out = append(out, req.Messages[1].Content)
	}
	return out
}

func newPipeline(data *fakeData, sum *fakeSummarizer, llm output.LLMPort) *UseCase {
	builder := contextbuilder.New(sum, nopLogger{}, contextbuilder.Config{})
	orchestrator := debate.New(llm, nopLogger{}, debate.Config{CallTimeout: time.Second})
	return New(data, builder, orchestrator, nopLogger{}, 10)
}

func tenSubstantiveReviews() entity.ReviewSet {
	reviews := make(entity.ReviewSet, 0, 10)
	for i := 0; i < 10; i++ {
		reviews = append(reviews, entity.Review{
			Rating: 4,
			Text:   fmt.Sprintf("Great food and warm service, visit number %d.", i),
		})
	}
	return reviews
}

func metadata() *entity.BusinessMetadata {
	return &entity.BusinessMetadata{
		ID:         "marios-trattoria",
		Name:       "Mario's Trattoria",
		Rating:     4.5,
		Price:      entity.PriceModest,
		Categories: []string{"Italian"},
		Address:    "12 Main St",
	}
}

// Scenario A: plenty of substantive reviews -> verdict built from them.
func TestEvaluate_ReviewPath(t *testing.T) {
	sum := &fakeSummarizer{}
	llm := &recordingLLM{judge: []string{validVerdict}}
	uc := newPipeline(&fakeData{metadata: metadata(), reviews: tenSubstantiveReviews()}, sum, llm)

	verdict, err := uc.Evaluate(context.Background(), "marios-trattoria")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if verdict.Pros == "" || verdict.Cons == "" || verdict.Recommendation == "" {
		t.Error("Verdict fields must all be populated")
	}
	if sum.calls != 0 {
		t.Error("Synthetic path must not be taken when reviews suffice")
	}

	for _, user := range llm.userContents() {
		if !strings.Contains(user, "Mario's Trattoria") {
			t.Error("Context missing metadata")
		}
		if !strings.Contains(user, "What visitors report:") {
			t.Error("Context missing review evidence")
		}
		if strings.Contains(user, "Usual strengths:") {
			t.Error("Synthetic body leaked into the review path")
		}
	}
}

// Scenario B: no reviews, well-formed synthetic summary -> synthetic path.
func TestEvaluate_SyntheticPath(t *testing.T) {
	sum := &fakeSummarizer{
		positives: []string{"p1", "p2", "p3"},
		negatives: []string{"n1", "n2", "n3"},
	}
	llm := &recordingLLM{judge: []string{validVerdict}}
	uc := newPipeline(&fakeData{metadata: metadata()}, sum, llm)

	verdict, err := uc.Evaluate(context.Background(), "marios-trattoria")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if verdict == nil {
		t.Fatal("Expected a verdict")
	}
	if sum.calls != 1 {
		t.Errorf("Expected one summarizer call, got %d", sum.calls)
	}

	users := llm.userContents()
	if len(users) == 0 || !strings.Contains(users[0], "Usual strengths:") {
		t.Error("Context must carry the synthetic summary")
	}
}

// Scenario C: no reviews and a malformed summary -> fatal, no verdict.
func TestEvaluate_MalformedSummaryFailsWithoutGeneration(t *testing.T) {
	sum := &fakeSummarizer{
		positives: []string{"p1", "p2"},
		negatives: []string{"n1", "n2", "n3"},
	}
	llm := &recordingLLM{judge: []string{validVerdict}}
	uc := newPipeline(&fakeData{metadata: metadata()}, sum, llm)

	_, err := uc.Evaluate(context.Background(), "marios-trattoria")
	var insErr *entity.InsufficientEvidenceError
	if !errors.As(err, &insErr) {
		t.Fatalf("Expected *entity.InsufficientEvidenceError, got %T: %v", err, err)
	}
	if len(llm.userContents()) != 0 {
		t.Error("No agent pass may run without a valid context")
	}
}

// Scenario D: judge output stays malformed -> one retry, then ValidationError.
func TestEvaluate_PersistentJudgeFailure(t *testing.T) {
	llm := &recordingLLM{judge: []string{"Pros: good\nOur verdict: go"}}
	uc := newPipeline(&fakeData{metadata: metadata(), reviews: tenSubstantiveReviews()}, &fakeSummarizer{}, llm)

	_, err := uc.Evaluate(context.Background(), "marios-trattoria")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *entity.ValidationError, got %T: %v", err, err)
	}
	if llm.judgeCalls != 2 {
		t.Errorf("Expected one judge retry (2 calls), got %d", llm.judgeCalls)
	}
}

func TestEvaluate_NotFoundPropagates(t *testing.T) {
	data := &fakeData{mdErr: &entity.NotFoundError{BusinessID: "ghost"}}
	uc := newPipeline(data, &fakeSummarizer{}, &recordingLLM{judge: []string{validVerdict}})

	_, err := uc.Evaluate(context.Background(), "ghost")
	var nfErr *entity.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("Expected *entity.NotFoundError, got %T: %v", err, err)
	}
}
