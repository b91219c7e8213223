package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"smartats/analyzer/internal/models"
)

type ReportService interface {
	PDFReport(record *models.AnalysisRecord) ([]byte, error)
	CSVReport(record *models.AnalysisRecord) ([]byte, error)
	TextSummary(record *models.AnalysisRecord) (string, error)
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

func decodeResult(record *models.AnalysisRecord) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(record.ResultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}
	return &result, nil
}

// PDFReport renders the analysis as a downloadable PDF document.
func (r *reportService) PDFReport(record *models.AnalysisRecord) ([]byte, error) {
	result, err := decodeResult(record)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "SmartATS Resume Analysis Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", record.CreatedAt.Format("2006-01-02 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Overall Score: %.1f / 100", result.OverallScore), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Score Breakdown", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range scoreRows(result) {
		pdf.CellFormat(80, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.1f", row.value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	writeListSection(pdf, "Strengths", result.Strengths)
	writeListSection(pdf, "Improvement Areas", result.Improvements)
	writeListSection(pdf, "Matched Keywords", result.MatchedKeywords)
	writeListSection(pdf, "Missing Keywords", result.MissingKeywords)

	if result.Suggestions != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, "Suggestions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, result.Suggestions, "", "L", false)
		pdf.Ln(2)
	}

	if len(result.Roadmap) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, "Optimization Roadmap", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range result.Roadmap {
			pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s - %s (%s, %s)",
				item.Priority, item.Action, item.Description, item.EstimatedImpact, item.TimeRequired), "", "L", false)
		}
	}

	if pdf.Error() != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type scoreRow struct {
	label string
	value float64
}

func scoreRows(result *models.AnalysisResult) []scoreRow {
	return []scoreRow{
		{"Keyword Optimization (30%)", result.Scores.KeywordOptimization},
		{"ATS Compatibility (25%)", result.Scores.ATSCompatibility},
		{"Industry Alignment (20%)", result.Scores.IndustryAlignment},
		{"Experience Relevance (15%)", result.Scores.ExperienceRelevance},
		{"Content Quality (10%)", result.Scores.ContentQuality},
	}
}

func writeListSection(pdf *fpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.MultiCell(0, 5, "- "+item, "", "L", false)
	}
	pdf.Ln(2)
}

// CSVReport exports the headline metrics as CSV rows.
func (r *reportService) CSVReport(record *models.AnalysisRecord) ([]byte, error) {
	result, err := decodeResult(record)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"overall_score", strconv.FormatFloat(result.OverallScore, 'f', 2, 64)},
		{"keyword_optimization", strconv.FormatFloat(result.Scores.KeywordOptimization, 'f', 2, 64)},
		{"ats_compatibility", strconv.FormatFloat(result.Scores.ATSCompatibility, 'f', 2, 64)},
		{"industry_alignment", strconv.FormatFloat(result.Scores.IndustryAlignment, 'f', 2, 64)},
		{"experience_relevance", strconv.FormatFloat(result.Scores.ExperienceRelevance, 'f', 2, 64)},
		{"content_quality", strconv.FormatFloat(result.Scores.ContentQuality, 'f', 2, 64)},
		{"keyword_density", strconv.Itoa(result.KeywordDensity)},
		{"matched_keywords", strings.Join(result.MatchedKeywords, "; ")},
		{"missing_keywords", strings.Join(result.MissingKeywords, "; ")},
		{"industry", record.Industry},
		{"experience_level", record.ExperienceLevel},
		{"analysis_depth", record.AnalysisDepth},
		{"duration_ms", strconv.FormatInt(record.DurationMs, 10)},
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// TextSummary produces a markdown summary of the analysis.
func (r *reportService) TextSummary(record *models.AnalysisRecord) (string, error) {
	result, err := decodeResult(record)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("# SmartATS Analysis Summary\n\n")
	fmt.Fprintf(&sb, "**Overall Score:** %.1f / 100\n\n", result.OverallScore)

	sb.WriteString("## Scores\n")
	for _, row := range scoreRows(result) {
		fmt.Fprintf(&sb, "- %s: %.1f\n", row.label, row.value)
	}
	sb.WriteString("\n")

	if len(result.Strengths) > 0 {
		sb.WriteString("## Strengths\n")
		for _, s := range result.Strengths {
			fmt.Fprintf(&sb, "- %s\n", s)
		}
		sb.WriteString("\n")
	}

	if len(result.Improvements) > 0 {
		sb.WriteString("## Improvement Areas\n")
		for _, s := range result.Improvements {
			fmt.Fprintf(&sb, "- %s\n", s)
		}
		sb.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		fmt.Fprintf(&sb, "## Missing Keywords\n%s\n\n", strings.Join(result.MissingKeywords, ", "))
	}

	if result.Suggestions != "" {
		fmt.Fprintf(&sb, "## Suggestions\n%s\n", result.Suggestions)
	}

	return sb.String(), nil
}
