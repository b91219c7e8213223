package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "frequency ranking",
			text:  "kubernetes kubernetes docker docker docker terraform",
			limit: 0,
			want:  []string{"docker", "kubernetes", "terraform"},
		},
		{
			name:  "stopwords and short words skipped",
			text:  "we are looking for a go engineer with kafka experience",
			limit: 0,
			want:  []string{"engineer", "experience", "kafka", "looking"},
		},
		{
			name:  "limit applied",
			text:  "python sql sql airflow airflow airflow",
			limit: 2,
			want:  []string{"airflow", "sql"},
		},
		{
			name:  "ties break alphabetically",
			text:  "redis postgres",
			limit: 0,
			want:  []string{"postgres", "redis"},
		},
		{
			name:  "empty text",
			text:  "",
			limit: 5,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchKeywords(t *testing.T) {
	resume := "Senior engineer with Kubernetes and Terraform experience, practicing risk management daily"

	matched, missing := MatchKeywords(resume, []string{"kubernetes", "terraform", "kafka", "risk management"})

	assert.Equal(t, []string{"kubernetes", "terraform", "risk management"}, matched)
	assert.Equal(t, []string{"kafka"}, missing)
}

func TestKeywordDensity(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		jd     string
		want   int
	}{
		{
			name:   "partial overlap",
			resume: "go redis sql",
			jd:     "go sql kafka",
			want:   66,
		},
		{
			name:   "full overlap",
			resume: "go kafka",
			jd:     "go kafka",
			want:   100,
		},
		{
			name:   "no overlap",
			resume: "java spring",
			jd:     "rust tokio",
			want:   0,
		},
		{
			name:   "empty job description",
			resume: "go",
			jd:     "",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordDensity(tt.resume, tt.jd))
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Go, Kafka & gRPC (v1.2)!")
	assert.Equal(t, []string{"go", "kafka", "grpc", "v1", "2"}, got)
}
