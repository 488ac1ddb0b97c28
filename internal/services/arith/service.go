package arith

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"calc/internal/calculator"
	"calc/internal/domain"
)

// Service adds numbers and keeps a record of each result.
type Service struct {
	calc    *calculator.Calculator
	history domain.HistoryStore
	log     *zap.Logger
	now     func() time.Time
}

// New returns a service recording into history. A nil history disables
// recording and a nil logger discards logs.
func New(history domain.HistoryStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		calc:    calculator.New(),
		history: history,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the timestamp source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Add returns the recorded float64 sum of a and b.
//
// If the history write fails the computed entry is still returned together
// with the error.
func (s *Service) Add(ctx context.Context, a, b float64) (domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return domain.Entry{}, err
	}
	e := s.newEntry(a, b, s.calc.Add(a, b), false)
	return e, s.record(e)
}

// AddInt returns the recorded checked int64 sum of a and b.
func (s *Service) AddInt(ctx context.Context, a, b int64) (domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return domain.Entry{}, err
	}
	sum, err := s.calc.AddInt(a, b)
	if err != nil {
		s.log.Debug("integer add rejected", zap.Int64("a", a), zap.Int64("b", b), zap.Error(err))
		return domain.Entry{}, fmt.Errorf("add %d + %d: %w", a, b, err)
	}
	e := s.newEntry(float64(a), float64(b), float64(sum), true)
	e.Ints = &domain.IntOperands{A: a, B: b, Result: sum}
	return e, s.record(e)
}

// History returns up to limit of the most recent entries, oldest first.
func (s *Service) History(ctx context.Context, limit int) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(limit)
}

// ClearHistory drops every recorded entry.
func (s *Service) ClearHistory(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.history == nil {
		return nil
	}
	if err := s.history.Clear(); err != nil {
		return err
	}
	s.log.Debug("history cleared")
	return nil
}

func (s *Service) newEntry(a, b, result float64, integer bool) domain.Entry {
	return domain.Entry{
		ID:      domain.EntryID(uuid.NewString()),
		Op:      domain.OpAdd,
		A:       a,
		B:       b,
		Result:  result,
		Integer: integer,
		At:      s.now(),
	}
}

func (s *Service) record(e domain.Entry) error {
	s.log.Debug("computed",
		zap.String("id", e.ID.String()),
		zap.String("op", e.Op.String()),
		zap.Float64("a", e.A),
		zap.Float64("b", e.B),
		zap.Float64("result", e.Result),
		zap.Bool("integer", e.Integer))

	if s.history == nil {
		return nil
	}
	if err := s.history.Append(e); err != nil {
		s.log.Warn("history write failed", zap.String("id", e.ID.String()), zap.Error(err))
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CalculatorService.
var _ domain.CalculatorService = (*Service)(nil)
