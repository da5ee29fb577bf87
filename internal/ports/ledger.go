package ports

import "autogensummary/internal/domain"

// RunLedger keeps a history of summary generations.
// It never influences what gets rendered.
type RunLedger interface {
	Record(run *domain.Run) error
	Recent(limit int) ([]domain.Run, error)
	Close() error
}
