package service

import (
	"context"
	"errors"
	"testing"

	"teamsort/internal/model"
)

func gamesWithCounts(counts map[model.Category]int, uncertain int) []model.GameResult {
	var games []model.GameResult
	for cat, n := range counts {
		for i := 0; i < n; i++ {
			games = append(games, model.GameResult{PredictedClass: string(cat)})
		}
	}
	for i := 0; i < uncertain; i++ {
		games = append(games, model.GameResult{
			PredictedClass: model.VerdictUncertain,
			IsUncertain:    true,
		})
	}
	return games
}

func TestStatsService_AreaStatisticsExcludesUncertain(t *testing.T) {
	repo := &memResultRepo{games: gamesWithCounts(map[model.Category]int{
		model.CategoryMedia:   3,
		model.CategoryProject: 1,
	}, 6)}
	svc := NewStatsService(repo, &memWeightsCache{})

	shares, total, err := svc.AreaStatistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if shares[model.CategoryMedia] != 0.75 {
		t.Errorf("media share = %v, want 0.75", shares[model.CategoryMedia])
	}
	if shares[model.CategoryProject] != 0.25 {
		t.Errorf("project share = %v, want 0.25", shares[model.CategoryProject])
	}
}

func TestStatsService_BalancedWeightTiers(t *testing.T) {
	// Shares: project 0.10, media 0.16, network 0.20, org 0.30, edu 0.24.
	repo := &memResultRepo{games: gamesWithCounts(map[model.Category]int{
		model.CategoryProject:      10,
		model.CategoryMedia:        16,
		model.CategoryNetwork:      20,
		model.CategoryOrganization: 30,
		model.CategoryEducation:    24,
	}, 0)}
	cache := &memWeightsCache{}
	svc := NewStatsService(repo, cache)

	weights := svc.BalancedWeights(context.Background())

	want := map[model.Category]float64{
		model.CategoryProject:      1.5, // rare, boost hard
		model.CategoryMedia:        1.3,
		model.CategoryNetwork:      1.0,
		model.CategoryOrganization: 0.8, // over-represented, damp
		model.CategoryEducation:    1.0,
	}
	for cat, w := range want {
		if weights[cat] != w {
			t.Errorf("weight[%s] = %v, want %v", cat, weights[cat], w)
		}
	}
	if cache.sets != 1 {
		t.Errorf("expected weights to be cached once, got %d", cache.sets)
	}
}

func TestStatsService_UniformFallbackOnRepoFailure(t *testing.T) {
	repo := &memResultRepo{recentErr: errors.New("mongo down")}
	svc := NewStatsService(repo, &memWeightsCache{})

	weights := svc.BalancedWeights(context.Background())
	for _, cat := range model.Categories {
		if weights[cat] != 1.0 {
			t.Errorf("weight[%s] = %v, want uniform 1.0", cat, weights[cat])
		}
	}
}

func TestStatsService_UniformWhenNoHistory(t *testing.T) {
	svc := NewStatsService(&memResultRepo{}, &memWeightsCache{})

	weights := svc.BalancedWeights(context.Background())
	for _, cat := range model.Categories {
		if weights[cat] != 1.0 {
			t.Errorf("weight[%s] = %v, want uniform 1.0", cat, weights[cat])
		}
	}
}

func TestStatsService_PrefersCachedWeights(t *testing.T) {
	cached := map[model.Category]float64{model.CategoryMedia: 1.5}
	// A failing repo proves the cache short-circuits the recompute.
	repo := &memResultRepo{recentErr: errors.New("mongo down")}
	svc := NewStatsService(repo, &memWeightsCache{w: cached})

	weights := svc.BalancedWeights(context.Background())
	if weights[model.CategoryMedia] != 1.5 {
		t.Errorf("expected cached weights, got %v", weights)
	}
}
