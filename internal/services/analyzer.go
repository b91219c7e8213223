package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartats/analyzer/internal/models"
	"smartats/analyzer/internal/repositories"
)

// Sub-score weights for the overall score.
const (
	weightKeyword    = 0.30
	weightATS        = 0.25
	weightIndustry   = 0.20
	weightExperience = 0.15
	weightContent    = 0.10
)

const fallbackKeywordLimit = 15

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, resumeText string, docID *uuid.UUID, req models.AnalyzeRequest) (*models.AnalysisResult, error)
}

type analyzerService struct {
	geminiService GeminiService
	analysisRepo  repositories.AnalysisRepository
	promptBuilder *PromptBuilder
	insightEngine *InsightEngine
}

func NewAnalyzerService(
	geminiService GeminiService,
	analysisRepo repositories.AnalysisRepository,
) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		analysisRepo:  analysisRepo,
		promptBuilder: NewPromptBuilder(),
		insightEngine: NewInsightEngine(),
	}
}

// baseAnalysis is the JSON shape the model is asked to return.
type baseAnalysis struct {
	KeywordOptimization float64  `json:"keyword_optimization"`
	ATSCompatibility    float64  `json:"ats_compatibility"`
	IndustryAlignment   float64  `json:"industry_alignment"`
	ExperienceRelevance float64  `json:"experience_relevance"`
	ContentQuality      float64  `json:"content_quality"`
	MatchedKeywords     []string `json:"matched_keywords"`
	MissingKeywords     []string `json:"missing_keywords"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	Suggestions         string   `json:"suggestions"`
}

func (a *analyzerService) AnalyzeResume(ctx context.Context, resumeText string, docID *uuid.UUID, req models.AnalyzeRequest) (*models.AnalysisResult, error) {
	industry := req.Industry
	if industry == "" {
		industry = "Technology"
	}
	level := models.ExperienceLevel(req.ExperienceLevel)
	if !level.Valid() {
		level = models.LevelMid
	}
	depth := models.AnalysisDepth(req.AnalysisDepth)
	if !depth.Valid() {
		depth = models.DepthStandard
	}

	start := time.Now()

	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(resumeText, req.JobDescription, industry, level, depth)
	log.Printf("📝 Analysis prompt length: %d characters", len(prompt))

	response, err := a.geminiService.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}
	log.Printf("✅ Analysis response received: %d characters", len(response))

	var base baseAnalysis
	if err := parseJSONResponse(response, &base); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	result := a.buildResult(&base, resumeText, req.JobDescription, industry, level, depth)
	result.AnalyzedAt = time.Now()
	result.DurationMs = time.Since(start).Milliseconds()

	record, err := a.recordAnalysis(result, docID, industry, level, depth)
	if err != nil {
		// The analysis itself succeeded; losing the analytics row is not fatal.
		log.Printf("⚠️  Failed to record analysis: %v\n", err)
	} else {
		result.ID = record.ID.String()
	}

	return result, nil
}

func (a *analyzerService) buildResult(
	base *baseAnalysis,
	resumeText, jobDescription, industry string,
	level models.ExperienceLevel,
	depth models.AnalysisDepth,
) *models.AnalysisResult {
	scores := models.ScoreBreakdown{
		KeywordOptimization: clampScore(base.KeywordOptimization),
		ATSCompatibility:    clampScore(base.ATSCompatibility),
		IndustryAlignment:   clampScore(base.IndustryAlignment),
		ExperienceRelevance: clampScore(base.ExperienceRelevance),
		ContentQuality:      clampScore(base.ContentQuality),
	}

	overall := scores.KeywordOptimization*weightKeyword +
		scores.ATSCompatibility*weightATS +
		scores.IndustryAlignment*weightIndustry +
		scores.ExperienceRelevance*weightExperience +
		scores.ContentQuality*weightContent

	matched, missing := base.MatchedKeywords, base.MissingKeywords
	if len(matched) == 0 && len(missing) == 0 {
		// Model omitted keyword lists; fall back to deterministic matching.
		matched, missing = MatchKeywords(resumeText, ExtractKeywords(jobDescription, fallbackKeywordLimit))
	}

	result := &models.AnalysisResult{
		OverallScore:         round2(overall),
		Scores:               scores,
		MatchedKeywords:      matched,
		MissingKeywords:      missing,
		KeywordDensity:       KeywordDensity(resumeText, jobDescription),
		Strengths:            base.Strengths,
		Improvements:         base.Improvements,
		Suggestions:          base.Suggestions,
		IndustryInsights:     a.insightEngine.IndustryInsights(industry, resumeText),
		ExperienceAdjustment: a.insightEngine.ExperienceAdjustment(level),
		Roadmap:              a.insightEngine.BuildRoadmap(overall, missing, scores.ATSCompatibility),
		Competitive:          a.insightEngine.CompetitiveAnalysis(overall, matched, missing),
		ATSSimulation:        a.insightEngine.SimulateATS(resumeText),
	}

	if depth == models.DepthDeep {
		result.DeepMetrics = DeepDiveMetrics(resumeText)
	}

	return result
}

func (a *analyzerService) recordAnalysis(
	result *models.AnalysisResult,
	docID *uuid.UUID,
	industry string,
	level models.ExperienceLevel,
	depth models.AnalysisDepth,
) (*models.AnalysisRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}

	record := &models.AnalysisRecord{
		ID:              uuid.New(),
		DocumentID:      docID,
		Industry:        industry,
		ExperienceLevel: string(level),
		AnalysisDepth:   string(depth),
		OverallScore:    result.OverallScore,
		KeywordScore:    result.Scores.KeywordOptimization,
		ATSScore:        result.Scores.ATSCompatibility,
		ResultJSON:      string(payload),
		DurationMs:      result.DurationMs,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := a.analysisRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown
// or other formatting.
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
