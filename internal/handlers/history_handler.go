package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartats/analyzer/internal/models"
	"smartats/analyzer/internal/repositories"
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetAnalysis handles GET /analyses/:id.
func (h *HistoryHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	record, err := h.analysisRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(record.ResultJSON), &result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to decode stored analysis",
		})
	}
	result.ID = record.ID.String()

	return c.JSON(result)
}

// HandleListAnalyses handles GET /analyses. Returns the recent history in
// dashboard form: headline scores only.
func (h *HistoryHandler) HandleListAnalyses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	records, err := h.analysisRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analyses",
		})
	}

	responses := make([]models.HistoryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, models.HistoryResponse{
			ID:              record.ID.String(),
			Industry:        record.Industry,
			ExperienceLevel: record.ExperienceLevel,
			AnalysisDepth:   record.AnalysisDepth,
			OverallScore:    record.OverallScore,
			CreatedAt:       record.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"analyses": responses,
		"count":    len(responses),
	})
}
