// Package debate runs the three-pass reasoning sequence over an evidence
// brief: two independent advocate passes followed by a judge pass that
// produces the validated verdict.
package debate

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/infrastructure/prompts"
	"business-advisor/internal/retry"
	"business-advisor/internal/usecase/validator"
)

const (
	DefaultGenerationRetries = 2
	DefaultValidationRetries = 1
	DefaultCallTimeout       = 60 * time.Second
)

type Config struct {
	// GenerationRetries bounds re-attempts of a failed generation call.
	GenerationRetries int
	// ValidationRetries bounds judge re-runs after a malformed verdict.
	ValidationRetries int
	// CallTimeout applies to each individual generation call. A timed-out
	// call counts as a transient generation failure.
	CallTimeout time.Duration
	Temperature float32
}

func (c Config) withDefaults() Config {
	if c.GenerationRetries < 0 {
		c.GenerationRetries = 0
	} else if c.GenerationRetries == 0 {
		c.GenerationRetries = DefaultGenerationRetries
	}
	if c.ValidationRetries < 0 {
		c.ValidationRetries = 0
	} else if c.ValidationRetries == 0 {
		c.ValidationRetries = DefaultValidationRetries
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = DefaultCallTimeout
	}
	return c
}

type Orchestrator struct {
	llm    output.LLMPort
	logger output.LoggerPort
	cfg    Config
}

func New(llm output.LLMPort, logger output.LoggerPort, cfg Config) *Orchestrator {
	return &Orchestrator{
		llm:    llm,
		logger: logger,
		cfg:    cfg.withDefaults(),
	}
}

// Run executes the fixed debate sequence. The optimistic and critical
// passes have no data dependency on each other and run concurrently;
// neither sees the other's output. The judge pass blocks on both, then
// its output must survive validation or be retried within the bounded
// budget. Any stage failing fails the whole run; there is no partial
// verdict.
func (o *Orchestrator) Run(ctx context.Context, evctx entity.Context) (*entity.Verdict, error) {
	var optimistic, critical entity.AgentOpinion

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opinion, err := o.advocatePass(gctx, entity.RoleOptimist, evctx)
		if err != nil {
			return err
		}
		optimistic = opinion
		return nil
	})
	g.Go(func() error {
		opinion, err := o.advocatePass(gctx, entity.RoleCritic, evctx)
		if err != nil {
			return err
		}
		critical = opinion
		return nil
	})
	if err := g.Wait(); err != nil {
		o.logger.Error("Advocate pass failed", "error", err)
		return nil, err
	}

	o.logger.Debug("Advocate passes complete",
		"optimisticLen", len(optimistic.Text),
		"criticalLen", len(critical.Text),
	)

	return o.judgePass(ctx, evctx, optimistic, critical)
}

func (o *Orchestrator) advocatePass(ctx context.Context, role entity.AgentRole, evctx entity.Context) (entity.AgentOpinion, error) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: prompts.InstructionForRole(role)},
		{Role: entity.RoleUser, Content: string(evctx)},
	}

	text, err := o.generate(ctx, role, messages)
	if err != nil {
		return entity.AgentOpinion{}, err
	}
	return entity.AgentOpinion{Role: role, Text: text}, nil
}

func (o *Orchestrator) judgePass(ctx context.Context, evctx entity.Context, optimistic, critical entity.AgentOpinion) (*entity.Verdict, error) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: prompts.InstructionForRole(entity.RoleJudge)},
		{Role: entity.RoleUser, Content: judgeBrief(evctx, optimistic, critical)},
	}

	var lastErr error
	for attempt := 0; attempt <= o.cfg.ValidationRetries; attempt++ {
		raw, err := o.generate(ctx, entity.RoleJudge, messages)
		if err != nil {
			return nil, err
		}

		verdict, err := validator.Parse(raw)
		if err == nil {
			o.logger.Info("Verdict produced", "judgeAttempts", attempt+1)
			return verdict, nil
		}

		lastErr = err
		o.logger.Warn("Judge output failed validation", "attempt", attempt+1, "error", err)
	}

	return nil, lastErr
}

// generate runs one role-constrained generation call with a per-call
// timeout and bounded backoff retry on transient failures.
func (o *Orchestrator) generate(ctx context.Context, role entity.AgentRole, messages []entity.Message) (string, error) {
	retryCfg := retry.Config{
		MaxRetries: o.cfg.GenerationRetries,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Retryable:  entity.IsTransient,
	}

	return retry.Do(ctx, retryCfg, func(ctx context.Context) (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, o.cfg.CallTimeout)
		defer cancel()

		resp, err := o.llm.Chat(callCtx, output.ChatRequest{
			Messages:    messages,
			Temperature: o.cfg.Temperature,
		})
		if err != nil {
			return "", &entity.GenerationError{Stage: role, Err: err}
		}
		if strings.TrimSpace(resp.Content) == "" {
			return "", &entity.GenerationError{Stage: role, Err: errors.New("empty response")}
		}
		return resp.Content, nil
	})
}

func judgeBrief(evctx entity.Context, optimistic, critical entity.AgentOpinion) string {
	var sb strings.Builder
	sb.WriteString(string(evctx))
	sb.WriteString("\n\nOptimistic advocate:\n")
	sb.WriteString(optimistic.Text)
	sb.WriteString("\n\nCritical advocate:\n")
	sb.WriteString(critical.Text)
	return sb.String()
}
