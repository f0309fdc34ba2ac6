package reference

import (
	"context"
	"math"
	"testing"

	"sst_compliance/internal/domain/entities"
)

func TestPenaltyTable_PartitionPerWeight(t *testing.T) {
	bands, err := NewPenaltyTable().ListBands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byWeight := make(map[int][]entities.PenaltyBand)
	for _, b := range bands {
		byWeight[b.Weight] = append(byWeight[b.Weight], b)
	}

	for w := entities.QuestionWeightMin; w <= entities.QuestionWeightMax; w++ {
		group := byWeight[w]
		if len(group) == 0 {
			t.Fatalf("weight %d has no bands", w)
		}
		if group[0].EmployeesMin != 1 {
			t.Errorf("weight %d: first band starts at %d, want 1", w, group[0].EmployeesMin)
		}
		last := group[len(group)-1]
		if last.EmployeesMax != entities.EmployeesMaxSentinel {
			t.Errorf("weight %d: last band ends at %d, want %d", w, last.EmployeesMax, entities.EmployeesMaxSentinel)
		}
		for i := 1; i < len(group); i++ {
			if group[i].EmployeesMin != group[i-1].EmployeesMax+1 {
				t.Errorf("weight %d: gap between bands %d and %d (%d..%d then %d..%d)",
					w, i-1, i,
					group[i-1].EmployeesMin, group[i-1].EmployeesMax,
					group[i].EmployeesMin, group[i].EmployeesMax)
			}
			if group[i].MinValue <= group[i-1].MaxValue {
				t.Errorf("weight %d: fine ranges overlap between bands %d and %d", w, i-1, i)
			}
		}
		for _, b := range group {
			if b.MinValue <= 0 || b.MaxValue <= b.MinValue {
				t.Errorf("weight %d: invalid fine range [%v, %v]", w, b.MinValue, b.MaxValue)
			}
		}
	}
}

func TestPenaltyTable_FindBand(t *testing.T) {
	bands, _ := NewPenaltyTable().ListBands(context.Background())

	t.Run("known rows", func(t *testing.T) {
		cases := []struct {
			weight    int
			employees int
			min, max  float64
		}{
			{1, 30, 3782.62, 5673.91},
			{3, 26, 5673.92, 8321.74},
			{3, 50, 5673.92, 8321.74},
			{4, 501, 37852.90, 56779.33},
			{4, 750000, 37852.90, 56779.33},
		}
		for _, c := range cases {
			b, ok := entities.FindBand(bands, c.weight, c.employees)
			if !ok {
				t.Fatalf("no band for weight=%d employees=%d", c.weight, c.employees)
			}
			if b.MinValue != c.min || b.MaxValue != c.max {
				t.Fatalf("weight=%d employees=%d: got [%v, %v], want [%v, %v]",
					c.weight, c.employees, b.MinValue, b.MaxValue, c.min, c.max)
			}
		}
	})

	t.Run("no match outside the table", func(t *testing.T) {
		if _, ok := entities.FindBand(bands, 5, 30); ok {
			t.Fatalf("expected no band for weight 5")
		}
		if _, ok := entities.FindBand(bands, 1, 0); ok {
			t.Fatalf("expected no band for zero employees")
		}
	})

	t.Run("band midpoint", func(t *testing.T) {
		b, ok := entities.FindBand(bands, 1, 30)
		if !ok {
			t.Fatalf("expected band")
		}
		if got := b.Average(); math.Abs(got-4728.265) > 1e-9 {
			t.Fatalf("unexpected midpoint: %v", got)
		}
	})
}
