package services

import (
	"regexp"
	"strings"
	"unicode"

	"smartats/analyzer/internal/models"
)

var positiveWords = []string{
	"achieved", "improved", "increased", "successful", "led", "managed", "developed",
}

var impactWords = []string{
	"achieved", "improved", "increased", "reduced", "streamlined",
	"optimized", "led", "managed", "developed", "implemented",
	"delivered", "exceeded", "transformed", "innovated",
}

var weakPhrases = []string{
	"responsible for", "duties included", "worked on", "helped with",
	"participated in", "assisted with", "involved in",
}

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// ToneScore rates the resume's tone from the balance of strong action
// verbs versus weak passive phrasing.
func ToneScore(text string) (score, positive, weak int) {
	lowered := strings.ToLower(text)

	for _, word := range positiveWords {
		if strings.Contains(lowered, word) {
			positive++
		}
	}
	for _, phrase := range weakPhrases[:4] {
		if strings.Contains(lowered, phrase) {
			weak++
		}
	}

	score = (positive-weak)*10 + 70
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, positive, weak
}

// ReadabilityScore estimates readability from average sentence length,
// centered on 15 words per sentence.
func ReadabilityScore(text string) int {
	words := len(strings.Fields(text))
	sentences := strings.Count(text, ".")
	if sentences < 1 {
		sentences = 1
	}

	avg := float64(words) / float64(sentences)
	score := int(100 - (avg-15)*2)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// UniquenessScore measures vocabulary variety as the share of distinct
// words, scaled up by 1.5 and capped at 100.
func UniquenessScore(text string) int {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	unique := make(map[string]bool, len(words))
	for _, word := range words {
		unique[word] = true
	}

	score := int(float64(len(unique)) / float64(len(words)) * 100 * 1.5)
	if score > 100 {
		score = 100
	}
	return score
}

// FindImpactWords returns the high-impact action verbs present in text.
func FindImpactWords(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, word := range impactWords {
		if strings.Contains(lowered, word) {
			found = append(found, word)
		}
	}
	return found
}

// FindWeakPhrases returns the weak phrases present in text that should be
// replaced with action verbs.
func FindWeakPhrases(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, phrase := range weakPhrases {
		if strings.Contains(lowered, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

// QuantificationOpportunities flags places where numbers and metrics
// would strengthen the resume.
func QuantificationOpportunities(text string) []string {
	lowered := strings.ToLower(text)
	var opportunities []string

	if strings.Contains(lowered, "increased") && !strings.Contains(text, "%") {
		opportunities = append(opportunities, "Add percentage to 'increased' achievements")
	}
	if strings.Contains(lowered, "managed") && strings.Contains(lowered, "team") {
		opportunities = append(opportunities, "Specify team size (e.g., 'managed team of X people')")
	}
	if strings.Contains(lowered, "project") {
		opportunities = append(opportunities, "Add project timeline and budget if applicable")
	}
	return opportunities
}

// DeepDiveMetrics bundles all deterministic text metrics for a resume.
func DeepDiveMetrics(text string) *models.DeepMetrics {
	tone, positive, weak := ToneScore(text)

	overallTone := "Needs Improvement"
	if positive > weak {
		overallTone = "Strong"
	}

	return &models.DeepMetrics{
		ToneScore:                   tone,
		OverallTone:                 overallTone,
		PositiveIndicators:          positive,
		WeakIndicators:              weak,
		ReadabilityScore:            ReadabilityScore(text),
		UniquenessScore:             UniquenessScore(text),
		ImpactWords:                 FindImpactWords(text),
		WeakPhrases:                 FindWeakPhrases(text),
		QuantificationOpportunities: QuantificationOpportunities(text),
	}
}

// QuickATSScore is a fast ATS compatibility check run at upload time,
// before any model call.
func QuickATSScore(text string) int {
	score := 100

	if len(text) < 500 {
		score -= 20
	}
	if !yearPattern.MatchString(text) {
		score -= 15
	}
	if !strings.Contains(text, "@") {
		score -= 10
	}
	if specialCharCount(text) > len([]rune(text))/10 {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return score
}

func specialCharCount(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			continue
		}
		count++
	}
	return count
}
