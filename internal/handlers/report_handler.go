package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartats/analyzer/internal/repositories"
	"smartats/analyzer/internal/services"
)

type ReportHandler struct {
	analysisRepo  repositories.AnalysisRepository
	reportService services.ReportService
}

func NewReportHandler(
	analysisRepo repositories.AnalysisRepository,
	reportService services.ReportService,
) *ReportHandler {
	return &ReportHandler{
		analysisRepo:  analysisRepo,
		reportService: reportService,
	}
}

// HandleGetReport handles GET /report/:id?format=pdf|csv|summary.
func (h *ReportHandler) HandleGetReport(c *fiber.Ctx) error {
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

	format := c.Query("format", "pdf")

	switch format {
	case "pdf":
		data, err := h.reportService.PDFReport(record)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to generate PDF report: %v", err),
			})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="smartats_report_%s.pdf"`, record.ID))
		return c.Send(data)

	case "csv":
		data, err := h.reportService.CSVReport(record)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to generate CSV report: %v", err),
			})
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="smartats_data_%s.csv"`, record.ID))
		return c.Send(data)

	case "summary":
		summary, err := h.reportService.TextSummary(record)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to generate summary: %v", err),
			})
		}
		return c.JSON(fiber.Map{
			"id":      record.ID.String(),
			"summary": summary,
		})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "format must be one of: pdf, csv, summary",
		})
	}
}
