package services

import (
	"sort"
	"strings"
	"unicode"
)

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "or": true, "our": true, "that": true, "the": true, "their": true,
	"this": true, "to": true, "was": true, "we": true, "will": true, "with": true,
	"you": true, "your": true,
}

// Tokenize lowercases text and splits it into alphanumeric words.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ExtractKeywords returns up to limit keywords from text, ranked by
// frequency. Stopwords and words shorter than 3 characters are skipped.
// Ties break alphabetically so results are stable.
func ExtractKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	for _, word := range Tokenize(text) {
		if len(word) < 3 || stopwords[word] {
			continue
		}
		counts[word]++
	}

	keywords := make([]string, 0, len(counts))
	for word := range counts {
		keywords = append(keywords, word)
	}

	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// MatchKeywords splits keywords into those present in the resume text and
// those absent from it.
func MatchKeywords(resumeText string, keywords []string) (matched, missing []string) {
	present := make(map[string]bool)
	for _, word := range Tokenize(resumeText) {
		present[word] = true
	}

	lowered := strings.ToLower(resumeText)
	for _, kw := range keywords {
		key := strings.ToLower(kw)
		// Multi-word keywords match as substrings, single words as tokens.
		if present[key] || (strings.Contains(key, " ") && strings.Contains(lowered, key)) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matched, missing
}

// KeywordDensity reports the share of distinct job description words also
// present in the resume, as a percentage.
func KeywordDensity(resumeText, jobDescription string) int {
	resumeWords := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(resumeText)) {
		resumeWords[word] = true
	}

	jdWords := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(jobDescription)) {
		jdWords[word] = true
	}

	if len(jdWords) == 0 {
		return 0
	}

	common := 0
	for word := range jdWords {
		if resumeWords[word] {
			common++
		}
	}

	return common * 100 / len(jdWords)
}
