package reference

import (
	"context"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase/interfaces"
)

// PenaltyTable is the in-process regulatory fine table.
//
// The table is seeded once from the published regulation and never edited
// through normal operation, so it lives as reference data instead of a
// database table. Rows are keyed by (question weight, employee-count range)
// and hold the [min, max] monetary fine range; per weight the ranges
// partition [1, 999999] with adjacent bands chained at a cent.

type PenaltyTable struct {
	bands []entities.PenaltyBand
}

var _ interfaces.IPenaltyBandRepository = (*PenaltyTable)(nil)

func NewPenaltyTable() *PenaltyTable {
	return &PenaltyTable{bands: seededBands}
}

// ListBands returns the full table. Callers must treat the slice as
// read-only.
func (t *PenaltyTable) ListBands(_ context.Context) ([]entities.PenaltyBand, error) {
	return t.bands, nil
}

var seededBands = []entities.PenaltyBand{
	// weight 1
	{Weight: 1, EmployeesMin: 1, EmployeesMax: 10, MinValue: 1261.64, MaxValue: 2102.56},
	{Weight: 1, EmployeesMin: 11, EmployeesMax: 25, MinValue: 2102.57, MaxValue: 3782.61},
	{Weight: 1, EmployeesMin: 26, EmployeesMax: 50, MinValue: 3782.62, MaxValue: 5673.91},
	{Weight: 1, EmployeesMin: 51, EmployeesMax: 100, MinValue: 5673.92, MaxValue: 8411.16},
	{Weight: 1, EmployeesMin: 101, EmployeesMax: 250, MinValue: 8411.17, MaxValue: 11773.53},
	{Weight: 1, EmployeesMin: 251, EmployeesMax: 500, MinValue: 11773.54, MaxValue: 16820.21},
	{Weight: 1, EmployeesMin: 501, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 16820.22, MaxValue: 25230.86},

	// weight 2
	{Weight: 2, EmployeesMin: 1, EmployeesMax: 10, MinValue: 1892.46, MaxValue: 3153.84},
	{Weight: 2, EmployeesMin: 11, EmployeesMax: 25, MinValue: 3153.85, MaxValue: 4728.25},
	{Weight: 2, EmployeesMin: 26, EmployeesMax: 50, MinValue: 4728.26, MaxValue: 7092.38},
	{Weight: 2, EmployeesMin: 51, EmployeesMax: 100, MinValue: 7092.39, MaxValue: 10516.93},
	{Weight: 2, EmployeesMin: 101, EmployeesMax: 250, MinValue: 10516.94, MaxValue: 14719.41},
	{Weight: 2, EmployeesMin: 251, EmployeesMax: 500, MinValue: 14719.42, MaxValue: 21029.41},
	{Weight: 2, EmployeesMin: 501, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 21029.42, MaxValue: 31544.12},

	// weight 3
	{Weight: 3, EmployeesMin: 1, EmployeesMax: 10, MinValue: 2838.69, MaxValue: 4204.16},
	{Weight: 3, EmployeesMin: 11, EmployeesMax: 25, MinValue: 4204.17, MaxValue: 5673.91},
	{Weight: 3, EmployeesMin: 26, EmployeesMax: 50, MinValue: 5673.92, MaxValue: 8321.74},
	{Weight: 3, EmployeesMin: 51, EmployeesMax: 100, MinValue: 8321.75, MaxValue: 12619.11},
	{Weight: 3, EmployeesMin: 101, EmployeesMax: 250, MinValue: 12619.12, MaxValue: 17663.29},
	{Weight: 3, EmployeesMin: 251, EmployeesMax: 500, MinValue: 17663.30, MaxValue: 25235.26},
	{Weight: 3, EmployeesMin: 501, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 25235.27, MaxValue: 37852.89},

	// weight 4
	{Weight: 4, EmployeesMin: 1, EmployeesMax: 10, MinValue: 4204.17, MaxValue: 6306.25},
	{Weight: 4, EmployeesMin: 11, EmployeesMax: 25, MinValue: 6306.26, MaxValue: 8321.74},
	{Weight: 4, EmployeesMin: 26, EmployeesMax: 50, MinValue: 8321.75, MaxValue: 12219.43},
	{Weight: 4, EmployeesMin: 51, EmployeesMax: 100, MinValue: 12219.44, MaxValue: 18928.66},
	{Weight: 4, EmployeesMin: 101, EmployeesMax: 250, MinValue: 18928.67, MaxValue: 26494.93},
	{Weight: 4, EmployeesMin: 251, EmployeesMax: 500, MinValue: 26494.94, MaxValue: 37852.89},
	{Weight: 4, EmployeesMin: 501, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 37852.90, MaxValue: 56779.33},
}
