// Package converter runs conversions for the web, MCP and CLI surfaces.
//
// It owns the parts every surface shares: resolving a replayable dice seed,
// tracing each conversion and exposing the sensory option lists.
package converter

import (
	"context"
	"fmt"

	"github.com/louisbranch/cands-to-harn/internal/conversion"
	"github.com/louisbranch/cands-to-harn/internal/core/dice"
	"github.com/louisbranch/cands-to-harn/internal/options"
	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
	"github.com/louisbranch/cands-to-harn/internal/platform/otel"
	"github.com/louisbranch/cands-to-harn/internal/random"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service converts characters with a fixed engine and option set.
type Service struct {
	engine  conversion.Engine
	options options.Set
	tracer  trace.Tracer
	seeds   func(*int64) (int64, error)
}

// Option customizes a Service.
type Option func(*Service)

// WithTracer replaces the global tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// New returns a Service.
func New(engine conversion.Engine, set options.Set, opts ...Option) *Service {
	s := &Service{
		engine:  engine,
		options: set,
		tracer:  otel.Tracer("internal/services/shared/converter"),
		seeds:   random.ResolveSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Outcome is a conversion plus the seed its dice were drawn from. Seed is
// nil when the conversion rolled no dice.
type Outcome struct {
	Result conversion.Result
	Seed   *int64
}

// Options returns the sensory option lists.
func (s *Service) Options() options.Set {
	return s.options
}

// Basis returns the engine's average basis.
func (s *Service) Basis() conversion.AverageBasis {
	return s.engine.Basis()
}

// Convert runs one conversion. When src needs dice, they are drawn from a
// roller seeded with seed, or with a fresh seed when seed is nil.
func (s *Service) Convert(ctx context.Context, src conversion.SourceCharacter, seed *int64) (Outcome, error) {
	_, span := s.tracer.Start(ctx, "conversion.Convert", trace.WithAttributes(
		attribute.String("harn.growth", string(src.Growth)),
		attribute.Bool("harn.aura_bonus", src.AuraBonus),
		attribute.Bool("harn.roll_extras", src.RollExtras),
		attribute.String("harn.average_basis", string(s.engine.Basis())),
	))
	defer span.End()

	s.annotateOption(span, options.KindEyesight, src.Eyesight)
	s.annotateOption(span, options.KindHearing, src.Hearing)

	var (
		roller dice.Roller
		used   *int64
	)
	if conversion.NeedsDice(src) {
		resolved, err := s.seeds(seed)
		if err != nil {
			return Outcome{}, fail(span, apperrors.Wrap(apperrors.CodeUnknown, "resolve dice seed", err))
		}
		roller = dice.NewSeededRoller(resolved)
		used = &resolved
		span.SetAttributes(attribute.Int64("harn.seed", resolved))
	}

	result, err := s.engine.Convert(src, roller)
	if err != nil {
		return Outcome{}, fail(span, err)
	}
	sheet := result.Worksheet
	span.SetAttributes(
		attribute.Float64("harn.total_raw", sheet.TotalRaw),
		attribute.Float64("harn.average", sheet.Average),
		attribute.Float64("harn.baseline", sheet.Baseline),
	)
	return Outcome{Result: result, Seed: used}, nil
}

// RollStats rolls the four extra stats on their own and returns the seed
// used.
func (s *Service) RollStats(ctx context.Context, seed *int64) (conversion.RolledExtras, int64, error) {
	_, span := s.tracer.Start(ctx, "conversion.RollStats")
	defer span.End()

	resolved, err := s.seeds(seed)
	if err != nil {
		return conversion.RolledExtras{}, 0, fail(span, apperrors.Wrap(apperrors.CodeUnknown, "resolve dice seed", err))
	}
	span.SetAttributes(attribute.Int64("harn.seed", resolved))
	extras, err := conversion.RollExtras(dice.NewSeededRoller(resolved))
	if err != nil {
		return conversion.RolledExtras{}, 0, fail(span, err)
	}
	return extras, resolved, nil
}

// annotateOption records whether a sensory token is a listed option and,
// when it is not, the listed value it most likely meant.
func (s *Service) annotateOption(span trace.Span, kind options.Kind, value string) {
	prefix := "harn." + string(kind)
	_, listed := s.options.Find(kind, value)
	span.SetAttributes(attribute.Bool(prefix+".listed", listed))
	if listed {
		return
	}
	if suggestion := s.options.Suggest(kind, value); suggestion != "" {
		span.SetAttributes(attribute.String(prefix+".suggestion", suggestion))
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, fmt.Sprintf("%s: %v", apperrors.CodeOf(err), err))
	return err
}
