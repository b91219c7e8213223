package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartats/analyzer/internal/models"
)

func TestIndustryInsights(t *testing.T) {
	engine := NewInsightEngine()

	t.Run("known industry", func(t *testing.T) {
		resume := "Built cloud services behind an api gateway, worked in agile teams"

		insights := engine.IndustryInsights("Technology", resume)

		assert.Equal(t, "Technology", insights.Industry)
		assert.Equal(t, []string{"agile", "api", "cloud"}, insights.MatchedKeywords)
		assert.Len(t, insights.MissingKeywords, 4)
		assert.InDelta(t, 42.86, insights.IndustryScore, 0.01)
		assert.Len(t, insights.Recommendations, 3)
	})

	t.Run("unknown industry", func(t *testing.T) {
		insights := engine.IndustryInsights("Aerospace", "any resume text")

		assert.Zero(t, insights.IndustryScore)
		assert.Empty(t, insights.MatchedKeywords)
		assert.Equal(t, []string{"Tailor resume to industry-specific requirements"}, insights.Recommendations)
	})
}

func TestExperienceAdjustment(t *testing.T) {
	engine := NewInsightEngine()

	tests := []struct {
		level        models.ExperienceLevel
		wantWeight   float64
		wantExpect   string
		wantFocusLen int
	}{
		{models.LevelEntry, 0.8, "learning-focused", 4},
		{models.LevelMid, 1.0, "growth-oriented", 3},
		{models.LevelSenior, 1.2, "results-driven", 4},
		{models.LevelExecutive, 1.5, "strategic-leadership", 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			adj := engine.ExperienceAdjustment(tt.level)
			assert.Equal(t, tt.wantWeight, adj.KeywordWeight)
			assert.Equal(t, tt.wantExpect, adj.Expectations)
			assert.Len(t, adj.FocusAreas, tt.wantFocusLen)
		})
	}

	// Unknown level falls back to mid
	adj := engine.ExperienceAdjustment(models.ExperienceLevel("intern"))
	assert.Equal(t, 1.0, adj.KeywordWeight)
}

func TestBuildRoadmap(t *testing.T) {
	engine := NewInsightEngine()

	t.Run("low score triggers everything", func(t *testing.T) {
		missing := []string{"go", "kafka", "sql", "redis", "grpc"}

		roadmap := engine.BuildRoadmap(40, missing, 60)

		require.Len(t, roadmap, 3)
		assert.Equal(t, "Critical", roadmap[0].Priority)
		assert.Equal(t, "High", roadmap[1].Priority)
		assert.Equal(t, "Improve ATS Compatibility", roadmap[2].Action)
	})

	t.Run("strong resume gets no actions", func(t *testing.T) {
		roadmap := engine.BuildRoadmap(90, nil, 95)
		assert.Empty(t, roadmap)
	})
}

func TestCompetitiveAnalysis(t *testing.T) {
	engine := NewInsightEngine()

	tests := []struct {
		name            string
		score           float64
		matched         int
		missing         int
		wantLevel       string
		wantPositioning string
	}{
		{"top candidate", 85, 12, 1, "Medium", "Top 25%"},
		{"average candidate", 65, 5, 4, "High", "Top 50%"},
		{"weak candidate", 45, 2, 8, "High", "Needs Improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := make([]string, tt.matched)
			missing := make([]string, tt.missing)

			comp := engine.CompetitiveAnalysis(tt.score, matched, missing)

			assert.Equal(t, tt.wantLevel, comp.CompetitionLevel)
			assert.Equal(t, tt.wantPositioning, comp.MarketPositioning)
		})
	}
}

func TestSimulateATS(t *testing.T) {
	engine := NewInsightEngine()

	t.Run("very short resume parses poorly", func(t *testing.T) {
		sim := engine.SimulateATS("short resume")

		assert.Equal(t, 80, sim.ParsingSuccessRate)
		assert.Equal(t, "Top 95%", sim.EstimatedRanking)
	})

	t.Run("substantial resume", func(t *testing.T) {
		sim := engine.SimulateATS(strings.Repeat("word ", 200))

		assert.Equal(t, 95, sim.ParsingSuccessRate)
		assert.Equal(t, 90, sim.KeywordExtractionAccuracy)
		assert.Equal(t, "Top 80%", sim.EstimatedRanking)
		assert.Equal(t, "< 2 seconds", sim.ProcessingTime)
	})
}
