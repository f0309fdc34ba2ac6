package interfaces

import (
	"context"
	"sst_compliance/internal/domain/entities"
)

// IPenaltyBandRepository exposes the regulatory fine table.
//
// The table is immutable reference data; implementations only read.

type IPenaltyBandRepository interface {
	ListBands(ctx context.Context) ([]entities.PenaltyBand, error)
}
