package entities

// EmployeesMaxSentinel closes the last employee-count range of each weight.
const EmployeesMaxSentinel = 999999

// PenaltyBand is a row of the regulatory fine table: for a question weight
// and an employee-count range it defines the [MinValue, MaxValue] monetary
// range of the fine.
//
// Invariant: for a fixed weight the employee ranges are closed intervals
// partitioning [1, EmployeesMaxSentinel] without gaps or overlaps.
// The table is immutable reference data, seeded once.

type PenaltyBand struct {
	Weight       int     `json:"weight"`
	EmployeesMin int     `json:"employees_min"`
	EmployeesMax int     `json:"employees_max"`
	MinValue     float64 `json:"min_value"`
	MaxValue     float64 `json:"max_value"`
}

// Matches reports whether the band applies to the given weight and
// employee count.
func (b PenaltyBand) Matches(weight, employeesCount int) bool {
	return b.Weight == weight && employeesCount >= b.EmployeesMin && employeesCount <= b.EmployeesMax
}

// Average is the band midpoint, the per-occurrence penalty contribution
// for the band's weight group.
func (b PenaltyBand) Average() float64 {
	return (b.MinValue + b.MaxValue) / 2
}

// FindBand selects the unique band matching (weight, employeesCount).
// It returns ok=false when no band applies; callers treat that as a zero
// penalty contribution for the weight group.
func FindBand(bands []PenaltyBand, weight, employeesCount int) (PenaltyBand, bool) {
	for _, b := range bands {
		if b.Matches(weight, employeesCount) {
			return b, true
		}
	}
	return PenaltyBand{}, false
}
