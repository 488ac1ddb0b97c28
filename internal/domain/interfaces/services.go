package interfaces

import (
	"context"

	domaintypes "calc/internal/domain/types"
)

// CalculatorService performs and records arithmetic, locally or remotely.
type CalculatorService interface {
	Add(ctx context.Context, a, b float64) (domaintypes.Entry, error)
	AddInt(ctx context.Context, a, b int64) (domaintypes.Entry, error)
	History(ctx context.Context, limit int) ([]domaintypes.Entry, error)
	ClearHistory(ctx context.Context) error
}
