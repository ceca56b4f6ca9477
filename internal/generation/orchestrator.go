package generation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"codeberg.org/tubespark/server/internal/plans"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/tubespark/ideas"
)

// validates generation requests, spends one idea unit per batch and turns
// the capability's candidates into canonical ideas. Nothing is persisted.
type Orchestrator struct {
	ledger     Ledger
	capability Capability
	validate   *validator.Validate
	timeout    time.Duration
	observer   Observer
}

type Option func(*Orchestrator)

// bounds each capability call
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) {
		o.observer = obs
	}
}

func NewOrchestrator(ledger Ledger, capability Capability, opts ...Option) *Orchestrator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	o := &Orchestrator{
		ledger:     ledger,
		capability: capability,
		validate:   validate,
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// checks req without side effects
func (o *Orchestrator) Validate(req Request) error {
	err := o.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	invalid := &InvalidRequestError{}

	for _, fe := range validationErrs {
		if fe.Tag() == "required" {
			invalid.Missing = append(invalid.Missing, fe.Field())
		} else {
			invalid.Invalid = append(invalid.Invalid, fe.Field())
		}
	}

	return invalid
}

// runs one generation batch for userID. The consumed unit is not refunded
// when the capability fails.
func (o *Orchestrator) Generate(ctx context.Context, userID string, req Request) ([]ideas.Idea, *quota.Consumption, error) {
	start := time.Now()

	req = normalizeRequest(req)

	if err := o.Validate(req); err != nil {
		o.observe(OutcomeInvalid, start)
		return nil, nil, err
	}

	consumption, err := o.ledger.Consume(ctx, userID, plans.KindIdea, 1)
	if err != nil {
		o.observe(OutcomeFailed, start)
		return nil, nil, err
	}

	if !consumption.OK {
		o.observe(OutcomeRefused, start)
		return nil, consumption, &quota.ExceededError{
			Kind:  plans.KindIdea,
			Used:  consumption.Used,
			Limit: consumption.Limit,
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	candidates, err := o.capability.Generate(callCtx, req)
	if err == nil && len(candidates) == 0 {
		err = fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}

	if err != nil {
		o.observe(OutcomeFailed, start)
		return nil, consumption, &FailedError{Reason: FailureReason(callCtx, err), Err: err}
	}

	result := make([]ideas.Idea, 0, len(candidates))
	for _, candidate := range candidates {
		result = append(result, asCandidate(ideas.Normalize(ideas.Generated{
			Fields:      candidate,
			Niche:       req.Niche,
			ChannelType: req.ChannelType,
		}), req))
	}

	o.observe(OutcomeSuccess, start)

	return result, consumption, nil
}

func (o *Orchestrator) observe(outcome string, start time.Time) {
	if o.observer != nil {
		o.observer.ObserveGeneration(outcome, time.Since(start))
	}
}

// unsaved candidates carry no identity and keep the requested niche and
// channel type whatever the capability returned
func asCandidate(idea ideas.Idea, req Request) ideas.Idea {
	idea.ID = ""
	idea.UserID = ""

	if req.Niche != "" {
		idea.Niche = req.Niche
	}

	if req.ChannelType != "" {
		idea.ChannelType = req.ChannelType
	}

	return idea
}

func normalizeRequest(req Request) Request {
	req.Niche = strings.TrimSpace(req.Niche)
	req.ChannelType = strings.ToLower(strings.TrimSpace(req.ChannelType))
	req.AudienceAge = strings.TrimSpace(req.AudienceAge)
	req.ContentStyle = strings.TrimSpace(req.ContentStyle)
	req.Keywords = strings.TrimSpace(req.Keywords)
	req.Language = strings.ToLower(strings.TrimSpace(req.Language))

	return req
}

// maps a capability error to a FailedError reason
func FailureReason(callCtx context.Context, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(callCtx.Err(), context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, ErrMalformedResponse):
		return ReasonMalformed
	default:
		return ReasonProvider
	}
}
