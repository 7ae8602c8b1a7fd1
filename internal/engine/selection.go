package engine

import "teamsort/internal/model"

// diversityBoost is the draw-weight multiplier for questions whose
// primary area is currently the least asked within the session.
const diversityBoost = 3.0

// ChooseStartingQuestion draws the opening question over the whole
// catalog, biased by per-category global weights. A category missing
// from globalWeights counts as 1.0; an explicit zero makes that
// category's questions undrawable for the opening pick.
func ChooseStartingQuestion(c *Catalog, globalWeights map[model.Category]float64, rnd func() float64) (int, error) {
	weights := make([]float64, c.Size())
	for i := range weights {
		q, err := c.Get(i)
		if err != nil {
			return 0, err
		}
		w := 1.0
		if gw, ok := globalWeights[q.Primary]; ok {
			w = gw
		}
		weights[i] = w
	}
	return PickIndex(weights, rnd)
}

// ChooseNextQuestion draws one not-yet-asked question. Questions whose
// primary area ties the session's minimum ask count get the diversity
// boost, multiplied by the session's global category weight; the two
// signals multiply rather than compete. The second return is false when
// the catalog is exhausted. The session is not mutated; the caller
// records the pick via RecordQuestion.
func ChooseNextQuestion(c *Catalog, s *model.Session, rnd func() float64) (int, bool, error) {
	asked := make(map[int]bool, len(s.AskedQuestions))
	for _, i := range s.AskedQuestions {
		asked[i] = true
	}
	var unseen []int
	for i := 0; i < c.Size(); i++ {
		if !asked[i] {
			unseen = append(unseen, i)
		}
	}
	if len(unseen) == 0 {
		return 0, false, nil
	}

	// Minimum over the full category set, not just areas that still
	// have unseen questions.
	minCount := s.AreaCounts[model.Categories[0]]
	for _, cat := range model.Categories[1:] {
		if s.AreaCounts[cat] < minCount {
			minCount = s.AreaCounts[cat]
		}
	}

	weights := make([]float64, len(unseen))
	for i, idx := range unseen {
		q, err := c.Get(idx)
		if err != nil {
			return 0, false, err
		}
		w := 1.0
		if s.AreaCounts[q.Primary] == minCount {
			w = diversityBoost
		}
		if gw, ok := s.GlobalCategoryWeights[q.Primary]; ok {
			w *= gw
		}
		weights[i] = w
	}

	pick, err := PickIndex(weights, rnd)
	if err != nil {
		return 0, false, err
	}
	return unseen[pick], true, nil
}
