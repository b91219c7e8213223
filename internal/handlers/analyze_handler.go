package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartats/analyzer/internal/models"
	"smartats/analyzer/internal/repositories"
	"smartats/analyzer/internal/services"
)

type AnalyzeHandler struct {
	docRepo      repositories.DocumentRepository
	resumeParser services.ResumeParserService
	analyzer     services.AnalyzerService
}

func NewAnalyzeHandler(
	docRepo repositories.DocumentRepository,
	resumeParser services.ResumeParserService,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		docRepo:      docRepo,
		resumeParser: resumeParser,
		analyzer:     analyzer,
	}
}

// HandleAnalyze handles POST /analyze. The pipeline runs synchronously:
// one model call, then deterministic enrichment, and the full result comes
// back in the response.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	if req.ResumeText == "" && req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text or document_id is required",
		})
	}

	if req.ExperienceLevel != "" && !models.ExperienceLevel(req.ExperienceLevel).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "experience_level must be one of: entry, mid, senior, executive",
		})
	}

	if req.AnalysisDepth != "" && !models.AnalysisDepth(req.AnalysisDepth).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "analysis_depth must be one of: quick, standard, deep",
		})
	}

	resumeText := req.ResumeText
	var docID *uuid.UUID

	if resumeText == "" {
		id, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}

		doc, err := h.docRepo.FindByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found",
			})
		}

		resumeText, err = h.resumeParser.ExtractText(doc.FilePath)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to extract resume text: %v", err),
			})
		}
		docID = &id
	}

	result, err := h.analyzer.AnalyzeResume(c.Context(), resumeText, docID, req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("analysis failed: %v", err),
		})
	}

	return c.JSON(result)
}
