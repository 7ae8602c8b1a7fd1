package service

import (
	"context"
	"log"

	"teamsort/internal/cache"
	"teamsort/internal/model"
	"teamsort/internal/repository"
)

// statsWindow is how many recent games feed the global trend.
const statsWindow = 200

// StatsService derives global category trends from recently completed
// interviews and turns them into draw weights that nudge new sessions
// toward under-predicted teams.
type StatsService struct {
	results repository.ResultRepo
	weights cache.WeightsCache
}

// NewStatsService creates a new stats service.
func NewStatsService(results repository.ResultRepo, weights cache.WeightsCache) *StatsService {
	return &StatsService{
		results: results,
		weights: weights,
	}
}

// AreaStatistics returns each category's share of the recent
// non-uncertain games, plus the number of games counted.
func (s *StatsService) AreaStatistics(ctx context.Context) (map[model.Category]float64, int, error) {
	games, err := s.results.Recent(ctx, statsWindow)
	if err != nil {
		return nil, 0, err
	}

	counts := make(map[model.Category]int)
	total := 0
	for _, g := range games {
		if g.IsUncertain || g.PredictedClass == model.VerdictUncertain {
			continue
		}
		counts[model.Category(g.PredictedClass)]++
		total++
	}

	shares := make(map[model.Category]float64, len(counts))
	for c, n := range counts {
		shares[c] = float64(n) / float64(total)
	}
	return shares, total, nil
}

// BalancedWeights boosts categories that have been predicted rarely and
// damps over-represented ones. Any failure falls back to uniform
// weights: an interview must never block on missing history.
func (s *StatsService) BalancedWeights(ctx context.Context) map[model.Category]float64 {
	if cached, err := s.weights.Get(ctx); err == nil && cached != nil {
		return cached
	} else if err != nil {
		log.Printf("stats: weights cache read: %v", err)
	}

	shares, total, err := s.AreaStatistics(ctx)
	if err != nil {
		log.Printf("stats: area statistics unavailable, using uniform weights: %v", err)
		return UniformWeights()
	}
	if total == 0 {
		return UniformWeights()
	}

	weights := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		share, ok := shares[c]
		if !ok {
			share = 0.2 // assume an even split for unseen categories
		}
		switch {
		case share < 0.15:
			weights[c] = 1.5
		case share < 0.18:
			weights[c] = 1.3
		case share > 0.25:
			weights[c] = 0.8
		default:
			weights[c] = 1.0
		}
	}

	if err := s.weights.Set(ctx, weights); err != nil {
		log.Printf("stats: cache balanced weights: %v", err)
	}
	return weights
}

// UniformWeights returns 1.0 for every category.
func UniformWeights() map[model.Category]float64 {
	weights := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		weights[c] = 1.0
	}
	return weights
}
