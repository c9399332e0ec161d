package inventory

import (
	"bytes"
	"errors"

	"stock-check/core/logger"
	"stock-check/core/register"
	"stock-check/core/session"
	"stock-check/core/spreadsheet"
	"stock-check/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory session.
type Handler struct {
	service  *Service
	maxBytes int
}

// NewHandler creates a new HTTP handler accepting register uploads up to
// maxBytes.
func NewHandler(service *Service, maxBytes int) *Handler {
	return &Handler{service: service, maxBytes: maxBytes}
}

// ScanRequest is the body of POST /scan.
type ScanRequest struct {
	Serial string `json:"serial"`
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/register", h.HandleImportRegister)

	app.Get("/session", h.HandleStatus)
	app.Delete("/session", h.HandleReset)

	group := app.Group("/scan")
	group.Post("/", h.HandleScan)
	group.Post("/keep", h.HandleKeep)
	group.Post("/discard", h.HandleDiscard)

	reports := app.Group("/reports")
	reports.Get("/reconciliation", h.HandleReconciliation)
	reports.Get("/missing", h.HandleMissing)
	reports.Get("/adjustments", h.HandleAdjustments)
	reports.Get("/history", h.HandleHistory)
}

// statusFor maps session and register errors to HTTP status codes.
func statusFor(err error) int {
	var missing *register.MissingColumnsError
	switch {
	case errors.Is(err, session.ErrNoRegister):
		return fiber.StatusPreconditionFailed
	case errors.Is(err, session.ErrDecisionPending),
		errors.Is(err, session.ErrNoPendingDecision),
		errors.Is(err, session.ErrConfirmationRequired):
		return fiber.StatusConflict
	case errors.As(err, &missing),
		errors.Is(err, register.ErrEmptyRegister),
		errors.Is(err, spreadsheet.ErrUnsupportedFormat),
		errors.Is(err, spreadsheet.ErrUnreadable):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error, msg string) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// HandleImportRegister loads a register spreadsheet.
// @Summary Import Register
// @Description Uploads the asset register (xlsx or csv) and starts a new session. Replacing a register while scans exist requires confirm=true.
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Register spreadsheet"
// @Param confirm formData bool false "Discard the current session"
// @Success 200 {object} session.ImportSummary
// @Failure 409 {object} map[string]string "Confirmation required"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 422 {object} map[string]string "Invalid register"
// @Router /register [post]
func (h *Handler) HandleImportRegister(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}
	if h.maxBytes > 0 && fh.Size > int64(h.maxBytes) {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "register file is too large"})
	}

	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err, "Failed to open uploaded register")
	}
	defer f.Close()

	summary, err := h.service.ImportRegister(c.Context(), fh.Filename, f, utils.ToBool(c.FormValue("confirm")))
	if err != nil {
		return h.fail(c, err, "Register import failed")
	}

	logger.WithRayID(h.service.logger, c).Info("Register loaded",
		zap.String("file", fh.Filename),
		zap.Int("rows", summary.Rows),
	)
	return c.JSON(summary)
}

// HandleStatus returns the session summary.
// @Summary Session Status
// @Tags inventory
// @Produce json
// @Success 200 {object} session.Status
// @Router /session [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleReset starts a new empty session.
// @Summary Reset Session
// @Tags inventory
// @Produce json
// @Success 200 {object} ledger.Meta
// @Router /session [delete]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	meta := h.service.Reset()
	logger.WithRayID(h.service.logger, c).Info("Session reset", zap.String("session_id", meta.SessionID))
	return c.JSON(meta)
}

// HandleScan processes one scanned serial or asset tag.
// @Summary Scan Item
// @Description Verifies a scanned value against the register. Not-found results block scanning until kept or discarded.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Scanned value"
// @Success 200 {object} session.Result
// @Failure 409 {object} map[string]string "Decision pending"
// @Failure 412 {object} map[string]string "No register loaded"
// @Failure 500 {object} map[string]interface{} "Scan recorded but not saved"
// @Router /scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := h.service.Scan(c.Context(), req.Serial)
	if err != nil {
		if res != nil {
			logger.WithRayID(h.service.logger, c).Error("Scan recorded but session not saved", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "result": res})
		}
		return h.fail(c, err, "Scan failed")
	}
	return c.JSON(res)
}

// HandleKeep keeps the pending not-found scan.
// @Summary Keep Not-Found Scan
// @Tags inventory
// @Produce json
// @Success 200 {object} scan.Outcome
// @Failure 409 {object} map[string]string "Nothing pending"
// @Router /scan/keep [post]
func (h *Handler) HandleKeep(c *fiber.Ctx) error {
	kept, err := h.service.Keep()
	if err != nil {
		return h.fail(c, err, "Keep failed")
	}
	return c.JSON(kept)
}

// HandleDiscard removes the pending not-found scan.
// @Summary Discard Not-Found Scan
// @Tags inventory
// @Produce json
// @Success 200 {object} scan.Outcome
// @Failure 409 {object} map[string]string "Nothing pending"
// @Router /scan/discard [post]
func (h *Handler) HandleDiscard(c *fiber.Ctx) error {
	removed, err := h.service.Discard(c.Context())
	if err != nil {
		if removed != nil {
			logger.WithRayID(h.service.logger, c).Error("Discard applied but session not saved", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "removed": removed})
		}
		return h.fail(c, err, "Discard failed")
	}
	return c.JSON(removed)
}

func (h *Handler) export(c *fiber.Ctx, kind string) error {
	var buf bytes.Buffer
	name, err := h.service.Export(&buf, kind)
	if err != nil {
		return h.fail(c, err, "Export failed")
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, spreadsheet.ContentType)
	return c.Send(buf.Bytes())
}

func wantsXLSX(c *fiber.Ctx) bool {
	return c.Query("format") == "xlsx"
}

// HandleReconciliation returns the reconciliation report.
// @Summary Reconciliation Report
// @Tags reports
// @Produce json
// @Param format query string false "xlsx for a spreadsheet download"
// @Success 200 {object} reconcile.Report
// @Failure 412 {object} map[string]string "No register loaded"
// @Router /reports/reconciliation [get]
func (h *Handler) HandleReconciliation(c *fiber.Ctx) error {
	if wantsXLSX(c) {
		return h.export(c, "reconciliation")
	}
	rep, err := h.service.Reconciliation()
	if err != nil {
		return h.fail(c, err, "Reconciliation failed")
	}
	return c.JSON(rep)
}

// HandleMissing lists stock items that were not scanned.
// @Summary Missing Items
// @Tags reports
// @Produce json
// @Param format query string false "xlsx for a spreadsheet download"
// @Success 200 {array} register.Record
// @Failure 412 {object} map[string]string "No register loaded"
// @Router /reports/missing [get]
func (h *Handler) HandleMissing(c *fiber.Ctx) error {
	if wantsXLSX(c) {
		return h.export(c, "missing")
	}
	missing, err := h.service.Missing()
	if err != nil {
		return h.fail(c, err, "Missing report failed")
	}
	return c.JSON(missing)
}

// HandleAdjustments lists items that need correction in the asset system.
// @Summary Adjustment List
// @Tags reports
// @Produce json
// @Param format query string false "xlsx for a spreadsheet download"
// @Success 200 {object} Adjustments
// @Failure 412 {object} map[string]string "No register loaded"
// @Router /reports/adjustments [get]
func (h *Handler) HandleAdjustments(c *fiber.Ctx) error {
	if wantsXLSX(c) {
		return h.export(c, "adjustments")
	}
	adj, err := h.service.Adjustments()
	if err != nil {
		return h.fail(c, err, "Adjustment report failed")
	}
	return c.JSON(adj)
}

// HandleHistory lists the scans of the current session.
// @Summary Session History
// @Tags reports
// @Produce json
// @Param format query string false "xlsx for a spreadsheet download"
// @Success 200 {array} scan.Outcome
// @Router /reports/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	if wantsXLSX(c) {
		return h.export(c, "history")
	}
	return c.JSON(h.service.History())
}
