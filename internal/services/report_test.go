package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartats/analyzer/internal/models"
)

func testRecord(t *testing.T) *models.AnalysisRecord {
	t.Helper()

	result := models.AnalysisResult{
		OverallScore: 72.5,
		Scores: models.ScoreBreakdown{
			KeywordOptimization: 80,
			ATSCompatibility:    75,
			IndustryAlignment:   70,
			ExperienceRelevance: 65,
			ContentQuality:      60,
		},
		MatchedKeywords: []string{"go", "kafka"},
		MissingKeywords: []string{"terraform"},
		KeywordDensity:  40,
		Strengths:       []string{"Clear achievements"},
		Improvements:    []string{"Add certifications"},
		Suggestions:     "Quantify more outcomes.",
		Roadmap: []models.RoadmapItem{
			{
				Priority:        "High",
				Action:          "Optimize Technical Skills Section",
				Description:     "Incorporate missing technical keywords naturally",
				EstimatedImpact: "+10-15% match score",
				TimeRequired:    "30-60 minutes",
			},
		},
	}

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	return &models.AnalysisRecord{
		ID:              uuid.New(),
		Industry:        "Technology",
		ExperienceLevel: "mid",
		AnalysisDepth:   "standard",
		OverallScore:    72.5,
		ResultJSON:      string(payload),
		DurationMs:      1500,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPDFReport(t *testing.T) {
	svc := NewReportService()

	data, err := svc.PDFReport(testRecord(t))
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCSVReport(t *testing.T) {
	svc := NewReportService()

	data, err := svc.CSVReport(testRecord(t))
	require.NoError(t, err)

	csv := string(data)
	assert.Contains(t, csv, "metric,value")
	assert.Contains(t, csv, "overall_score,72.50")
	assert.Contains(t, csv, "keyword_optimization,80.00")
	assert.Contains(t, csv, "matched_keywords,go; kafka")
	assert.Contains(t, csv, "duration_ms,1500")
}

func TestTextSummary(t *testing.T) {
	svc := NewReportService()

	summary, err := svc.TextSummary(testRecord(t))
	require.NoError(t, err)

	assert.Contains(t, summary, "# SmartATS Analysis Summary")
	assert.Contains(t, summary, "**Overall Score:** 72.5 / 100")
	assert.Contains(t, summary, "- Clear achievements")
	assert.Contains(t, summary, "terraform")
	assert.Contains(t, summary, "Quantify more outcomes.")
}

func TestReportBadStoredResult(t *testing.T) {
	svc := NewReportService()
	record := &models.AnalysisRecord{ResultJSON: "not json"}

	_, err := svc.CSVReport(record)
	assert.ErrorContains(t, err, "failed to decode stored result")

	_, err = svc.PDFReport(record)
	assert.Error(t, err)

	_, err = svc.TextSummary(record)
	assert.Error(t, err)
}
