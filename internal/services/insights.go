package services

import (
	"fmt"
	"strings"

	"smartats/analyzer/internal/models"
)

var industryKeywords = map[string][]string{
	"Technology":   {"agile", "scrum", "api", "cloud", "devops", "microservices", "scalability"},
	"Healthcare":   {"hipaa", "patient care", "clinical", "medical", "compliance", "safety"},
	"Finance":      {"regulatory", "compliance", "risk management", "audit", "financial modeling"},
	"Marketing":    {"seo", "sem", "analytics", "conversion", "campaigns", "brand", "roi"},
	"Data Science": {"machine learning", "statistics", "python", "sql", "visualization", "modeling"},
}

var industryRecommendations = map[string][]string{
	"Technology": {
		"Emphasize technical achievements with metrics",
		"Include open-source contributions or personal projects",
		"Highlight experience with modern tech stacks",
	},
	"Healthcare": {
		"Emphasize patient outcomes and safety improvements",
		"Include relevant certifications and compliance knowledge",
		"Highlight interdisciplinary collaboration",
	},
	"Finance": {
		"Quantify financial impacts and cost savings",
		"Emphasize risk management and compliance experience",
		"Include relevant financial modeling and analysis skills",
	},
}

type InsightEngine struct{}

func NewInsightEngine() *InsightEngine {
	return &InsightEngine{}
}

// IndustryInsights scores the resume against the fixed keyword list for
// the given industry. Unknown industries score zero with a generic
// recommendation.
func (ie *InsightEngine) IndustryInsights(industry, resumeText string) *models.IndustryInsights {
	keywords := industryKeywords[industry]
	matched, missing := MatchKeywords(resumeText, keywords)

	score := 0.0
	if len(keywords) > 0 {
		score = float64(len(matched)) / float64(len(keywords)) * 100
	}

	recommendations := industryRecommendations[industry]
	if recommendations == nil {
		recommendations = []string{"Tailor resume to industry-specific requirements"}
	}

	return &models.IndustryInsights{
		Industry:        industry,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		IndustryScore:   score,
		Recommendations: recommendations,
	}
}

// ExperienceAdjustment returns the focus areas and keyword weighting for
// the candidate's experience band.
func (ie *InsightEngine) ExperienceAdjustment(level models.ExperienceLevel) *models.ExperienceAdjustment {
	switch level {
	case models.LevelEntry:
		return &models.ExperienceAdjustment{
			Level:         string(level),
			FocusAreas:    []string{"education", "projects", "internships", "certifications"},
			KeywordWeight: 0.8,
			Expectations:  "learning-focused",
		}
	case models.LevelSenior:
		return &models.ExperienceAdjustment{
			Level:         string(level),
			FocusAreas:    []string{"leadership", "strategy", "mentoring", "results"},
			KeywordWeight: 1.2,
			Expectations:  "results-driven",
		}
	case models.LevelExecutive:
		return &models.ExperienceAdjustment{
			Level:         string(level),
			FocusAreas:    []string{"vision", "transformation", "p&l", "board"},
			KeywordWeight: 1.5,
			Expectations:  "strategic-leadership",
		}
	default:
		return &models.ExperienceAdjustment{
			Level:         string(models.LevelMid),
			FocusAreas:    []string{"achievements", "leadership", "project management"},
			KeywordWeight: 1.0,
			Expectations:  "growth-oriented",
		}
	}
}

// BuildRoadmap produces the prioritized optimization actions for a scored
// analysis.
func (ie *InsightEngine) BuildRoadmap(overallScore float64, missingKeywords []string, atsScore float64) []models.RoadmapItem {
	var roadmap []models.RoadmapItem

	if overallScore < 50 {
		roadmap = append(roadmap, models.RoadmapItem{
			Priority:        "Critical",
			Action:          "Add Job-Specific Keywords",
			Description:     "Your resume lacks essential keywords from the job description",
			EstimatedImpact: "+20-30% match score",
			TimeRequired:    "1-2 hours",
		})
	}

	if len(missingKeywords) > 3 {
		roadmap = append(roadmap, models.RoadmapItem{
			Priority:        "High",
			Action:          "Optimize Technical Skills Section",
			Description:     "Incorporate missing technical keywords naturally",
			EstimatedImpact: "+10-15% match score",
			TimeRequired:    "30-60 minutes",
		})
	}

	if atsScore < 80 {
		roadmap = append(roadmap, models.RoadmapItem{
			Priority:        "High",
			Action:          "Improve ATS Compatibility",
			Description:     "Format resume for better ATS parsing",
			EstimatedImpact: "Better ATS pass-through rate",
			TimeRequired:    "45 minutes",
		})
	}

	return roadmap
}

// CompetitiveAnalysis positions the candidate against the assumed
// applicant pool for the role.
func (ie *InsightEngine) CompetitiveAnalysis(overallScore float64, matchedKeywords, missingKeywords []string) *models.CompetitiveAnalysis {
	level := "Medium"
	if overallScore < 70 {
		level = "High"
	}

	positioning := "Needs Improvement"
	switch {
	case overallScore > 80:
		positioning = "Top 25%"
	case overallScore > 60:
		positioning = "Top 50%"
	}

	var advantages []string
	if overallScore > 80 {
		advantages = append(advantages, "High keyword alignment with job requirements")
	}
	if len(matchedKeywords) > 10 {
		advantages = append(advantages, "Strong technical keyword coverage")
	}

	var areas []string
	if overallScore < 70 {
		areas = append(areas, "Increase job-specific keyword usage")
	}
	if len(missingKeywords) > 5 {
		areas = append(areas, "Add more relevant technical skills")
	}

	return &models.CompetitiveAnalysis{
		CompetitionLevel:  level,
		Advantages:        advantages,
		AreasToImprove:    areas,
		MarketPositioning: positioning,
	}
}

// SimulateATS models how a tracking system would process the resume.
func (ie *InsightEngine) SimulateATS(resumeText string) *models.ATSSimulation {
	parsingRate := 80
	if len(resumeText) > 100 {
		parsingRate = 95
	}

	words := len(strings.Fields(resumeText))
	rank := words / 10
	if rank < 5 {
		rank = 5
	}
	if rank > 95 {
		rank = 95
	}

	return &models.ATSSimulation{
		ParsingSuccessRate:        parsingRate,
		KeywordExtractionAccuracy: 90,
		FormattingCompatibility:   "High",
		EstimatedRanking:          fmt.Sprintf("Top %d%%", 100-rank),
		ProcessingTime:            "< 2 seconds",
	}
}
