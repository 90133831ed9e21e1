package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stack4devs/stack4devs/internal/platform/logging"
)

// Writes to the profile follow validate, perform, verify, archive, respond.
// Nothing is persisted until the new state has been built and re-checked,
// so a failure at any earlier step leaves the store untouched.

// Step names a stage of an Operation.
type Step string

const (
	StepValidate Step = "validate"
	StepPerform  Step = "perform"
	StepVerify   Step = "verify"
	StepArchive  Step = "archive"
	StepRespond  Step = "respond"
)

// StepError records the step an operation failed at. It unwraps to the
// cause so domain sentinels still match with errors.Is.
type StepError struct {
	Operation string
	Step      Step
	Cause     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Operation, e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// FailedStep reports the step err was raised at, if any.
func FailedStep(err error) (Step, bool) {
	var se *StepError
	if errors.As(err, &se) {
		return se.Step, true
	}

	return "", false
}

// Operation describes one write. I is the input, S the next state built by
// Perform, O the caller's result. Nil stages are skipped.
type Operation[I, S, O any] struct {
	Name string

	Validate func(ctx context.Context, in I) error
	Perform  func(ctx context.Context, in I) (S, error)
	Verify   func(ctx context.Context, in I, next S) error
	Archive  func(ctx context.Context, in I, next S) error
	Respond  func(ctx context.Context, in I, next S) (O, error)
}

// Execute runs op against in.
func Execute[I, S, O any](ctx context.Context, op Operation[I, S, O], in I) (O, error) {
	var (
		zero O
		next S
	)

	logger := logging.FromContext(ctx).With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step Step, err error) (O, error) {
		level := slog.LevelWarn
		if step == StepArchive {
			level = slog.LevelError
		}

		logger.Log(ctx, level, "operation failed", slog.String("step", string(step)), slog.Any("error", err))

		return zero, &StepError{Operation: op.Name, Step: step, Cause: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, in); err != nil {
			return fail(StepValidate, err)
		}
	}

	if op.Perform != nil {
		var err error
		if next, err = op.Perform(ctx, in); err != nil {
			return fail(StepPerform, err)
		}
	}

	if op.Verify != nil {
		if err := op.Verify(ctx, in, next); err != nil {
			return fail(StepVerify, err)
		}
	}

	if op.Archive != nil {
		if err := op.Archive(ctx, in, next); err != nil {
			return fail(StepArchive, err)
		}
	}

	out := zero

	if op.Respond != nil {
		var err error
		if out, err = op.Respond(ctx, in, next); err != nil {
			return fail(StepRespond, err)
		}
	}

	logger.Log(ctx, logging.LevelTrace, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}
