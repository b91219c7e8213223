package services

import (
	"fmt"
	"strings"

	"smartats/analyzer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt assembles the single analysis prompt from the
// resume text, job description, and the contextual parameters.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(
	resumeText, jobDescription, industry string,
	level models.ExperienceLevel,
	depth models.AnalysisDepth,
) string {
	var extras strings.Builder

	switch depth {
	case models.DepthQuick:
		extras.WriteString("Keep feedback concise: at most 3 strengths and 3 improvements.")
	case models.DepthDeep:
		extras.WriteString(`In the suggestions field, include concrete rewrite examples for the weakest resume bullets and specific phrasing to naturally incorporate the top missing keywords.`)
	default:
		extras.WriteString("Provide 3-5 strengths and 3-5 improvements with specific examples from the resume.")
	}

	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) consultant and career coach analyzing a resume against a job description.

TARGET INDUSTRY: %s
CANDIDATE EXPERIENCE LEVEL: %s

JOB DESCRIPTION:
%s

RESUME:
%s

Score the resume on the following categories (0-100 scale):
1. Keyword Optimization (Weight: 30%%) - Coverage of job description keywords and terminology
2. ATS Compatibility (Weight: 25%%) - Parseability, section structure, formatting safety
3. Industry Alignment (Weight: 20%%) - Fit with %s industry conventions and expectations
4. Experience Relevance (Weight: 15%%) - Match between candidate history and role seniority
5. Content Quality (Weight: 10%%) - Impact language, quantified achievements, clarity

%s

Return your response in the following JSON format:
{
  "keyword_optimization": <0-100>,
  "ats_compatibility": <0-100>,
  "industry_alignment": <0-100>,
  "experience_relevance": <0-100>,
  "content_quality": <0-100>,
  "matched_keywords": ["<keywords from the job description present in the resume>"],
  "missing_keywords": ["<important job description keywords absent from the resume>"],
  "strengths": ["<key strengths>"],
  "improvements": ["<improvement areas>"],
  "suggestions": "<actionable optimization advice, 3-5 sentences>"
}

Be objective and specific. Justify scores with evidence from the resume.`,
		industry, levelLabel(level), jobDescription, resumeText, industry, extras.String())
}

// levelLabel maps the experience level enum to the label used in prompts.
func levelLabel(level models.ExperienceLevel) string {
	switch level {
	case models.LevelEntry:
		return "Entry Level (0-2 years)"
	case models.LevelSenior:
		return "Senior Level (6-10 years)"
	case models.LevelExecutive:
		return "Executive (10+ years)"
	default:
		return "Mid Level (3-5 years)"
	}
}
