package models

import "time"

type UploadResponse struct {
	ID            string `json:"id"`
	Filename      string `json:"filename"`
	OriginalName  string `json:"original_name"`
	WordCount     int    `json:"word_count"`
	CharCount     int    `json:"char_count"`
	QuickATSScore int    `json:"quick_ats_score"`
}

type AnalyzeRequest struct {
	ResumeText      string `json:"resume_text"`
	DocumentID      string `json:"document_id"`
	JobDescription  string `json:"job_description" validate:"required"`
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experience_level"`
	AnalysisDepth   string `json:"analysis_depth"`
}

// ScoreBreakdown holds the five sub-scores (0-100) that make up the
// overall score. Weights: keyword 30%, ATS 25%, industry 20%,
// experience 15%, content 10%.
type ScoreBreakdown struct {
	KeywordOptimization float64 `json:"keyword_optimization"`
	ATSCompatibility    float64 `json:"ats_compatibility"`
	IndustryAlignment   float64 `json:"industry_alignment"`
	ExperienceRelevance float64 `json:"experience_relevance"`
	ContentQuality      float64 `json:"content_quality"`
}

type IndustryInsights struct {
	Industry        string   `json:"industry"`
	MatchedKeywords []string `json:"matched_industry_keywords"`
	MissingKeywords []string `json:"missing_industry_keywords"`
	IndustryScore   float64  `json:"industry_score"`
	Recommendations []string `json:"industry_recommendations"`
}

type ExperienceAdjustment struct {
	Level         string   `json:"level"`
	FocusAreas    []string `json:"focus_areas"`
	KeywordWeight float64  `json:"keyword_weight"`
	Expectations  string   `json:"experience_expectations"`
}

type DeepMetrics struct {
	ToneScore                   int      `json:"tone_score"`
	OverallTone                 string   `json:"overall_tone"`
	PositiveIndicators          int      `json:"positive_indicators"`
	WeakIndicators              int      `json:"weak_indicators"`
	ReadabilityScore            int      `json:"readability_score"`
	UniquenessScore             int      `json:"uniqueness_score"`
	ImpactWords                 []string `json:"impact_words"`
	WeakPhrases                 []string `json:"weak_phrases"`
	QuantificationOpportunities []string `json:"quantification_opportunities"`
}

type RoadmapItem struct {
	Priority        string `json:"priority"`
	Action          string `json:"action"`
	Description     string `json:"description"`
	EstimatedImpact string `json:"estimated_impact"`
	TimeRequired    string `json:"time_required"`
}

type CompetitiveAnalysis struct {
	CompetitionLevel  string   `json:"estimated_competition_level"`
	Advantages        []string `json:"competitive_advantages"`
	AreasToImprove    []string `json:"areas_to_improve"`
	MarketPositioning string   `json:"market_positioning"`
}

type ATSSimulation struct {
	ParsingSuccessRate        int    `json:"parsing_success_rate"`
	KeywordExtractionAccuracy int    `json:"keyword_extraction_accuracy"`
	FormattingCompatibility   string `json:"formatting_compatibility"`
	EstimatedRanking          string `json:"estimated_ranking"`
	ProcessingTime            string `json:"processing_time"`
}

type AnalysisResult struct {
	ID                   string                `json:"id"`
	OverallScore         float64               `json:"overall_score"`
	Scores               ScoreBreakdown        `json:"scores"`
	MatchedKeywords      []string              `json:"matched_keywords"`
	MissingKeywords      []string              `json:"missing_keywords"`
	KeywordDensity       int                   `json:"keyword_density"`
	Strengths            []string              `json:"strengths"`
	Improvements         []string              `json:"improvements"`
	Suggestions          string                `json:"suggestions"`
	IndustryInsights     *IndustryInsights     `json:"industry_insights,omitempty"`
	ExperienceAdjustment *ExperienceAdjustment `json:"experience_adjustment,omitempty"`
	DeepMetrics          *DeepMetrics          `json:"deep_metrics,omitempty"`
	Roadmap              []RoadmapItem         `json:"optimization_roadmap"`
	Competitive          *CompetitiveAnalysis  `json:"competitive_analysis,omitempty"`
	ATSSimulation        *ATSSimulation        `json:"ats_simulation,omitempty"`
	AnalyzedAt           time.Time             `json:"analyzed_at"`
	DurationMs           int64                 `json:"duration_ms"`
}

type HistoryResponse struct {
	ID              string    `json:"id"`
	Industry        string    `json:"industry"`
	ExperienceLevel string    `json:"experience_level"`
	AnalysisDepth   string    `json:"analysis_depth"`
	OverallScore    float64   `json:"overall_score"`
	CreatedAt       time.Time `json:"created_at"`
}
