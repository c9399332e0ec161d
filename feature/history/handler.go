package history

import (
	"bytes"
	"errors"

	"stock-check/core/logger"
	"stock-check/core/sessionstore"
	"stock-check/core/spreadsheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stored sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
}

func (h *Handler) fail(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, sessionstore.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, sessionstore.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleList lists stored sessions, newest first.
// @Summary List Sessions
// @Tags history
// @Produce json
// @Success 200 {array} ledger.Summary
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to list sessions")
	}
	return c.JSON(list)
}

// HandleGet returns one stored session.
// @Summary Get Session
// @Tags history
// @Produce json
// @Param id path string true "Session ID (YYYYMMDD_HHMMSS)"
// @Param format query string false "xlsx for a spreadsheet download"
// @Success 200 {object} Detail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /history/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")

	if c.Query("format") == "xlsx" {
		var buf bytes.Buffer
		name, err := h.service.Export(c.Context(), &buf, id)
		if err != nil {
			return h.fail(c, err, "Failed to export session")
		}
		c.Attachment(name)
		c.Set(fiber.HeaderContentType, spreadsheet.ContentType)
		return c.Send(buf.Bytes())
	}

	detail, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to load session")
	}
	return c.JSON(detail)
}

// HandleDelete removes one stored session.
// @Summary Delete Session
// @Tags history
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /history/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete session")
	}
	logger.WithRayID(h.service.logger, c).Info("Session deleted", zap.String("session_id", id))
	return c.SendStatus(fiber.StatusNoContent)
}
