package usecase

import (
	"math"

	"sst_compliance/internal/domain/entities"
)

// ComputePenalty derives the total monetary penalty for an evaluation's
// answer set against the regulatory fine table.
//
// Only NO answers (non-conforming items) contribute. They are grouped by
// their question's weight, then each weight group adds
//
//	bandAverage(weight, employeesCount) * count
//
// to the total, where bandAverage is the midpoint of the matching penalty
// band. A weight group with no matching band contributes zero; such weights
// are returned in unmatched so callers can log the table gap. The result is
// rounded to 2 decimals (half away from zero).
//
// The function is pure: it can be re-derived from persisted answers,
// questions and bands at any time, independent of the evaluation lifecycle.
func ComputePenalty(
	employeesCount int,
	answers []entities.Answer,
	questions []entities.Question,
	bands []entities.PenaltyBand,
) (total float64, unmatched []int) {
	counts := countNonConformingByWeight(answers, questions)

	for weight := entities.QuestionWeightMin; weight <= entities.QuestionWeightMax; weight++ {
		count := counts[weight]
		if count == 0 {
			continue
		}
		band, ok := entities.FindBand(bands, weight, employeesCount)
		if !ok {
			unmatched = append(unmatched, weight)
			continue
		}
		total += band.Average() * float64(count)
	}

	return roundMoney(total), unmatched
}

// countNonConformingByWeight counts NO answers per question weight.
// Answers pointing at questions outside the given catalog slice carry no
// resolvable weight and are ignored.
func countNonConformingByWeight(answers []entities.Answer, questions []entities.Question) map[int]int {
	weightByQuestion := make(map[string]int, len(questions))
	for _, q := range questions {
		weightByQuestion[q.ID] = q.Weight
	}

	counts := make(map[int]int)
	for _, a := range answers {
		if a.Value != entities.AnswerValueNo {
			continue
		}
		w, ok := weightByQuestion[a.QuestionID]
		if !ok {
			continue
		}
		counts[w]++
	}
	return counts
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
