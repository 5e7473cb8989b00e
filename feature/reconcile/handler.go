package reconcile

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"recon-manager/core/logger"
	"recon-manager/core/recon"
	"recon-manager/feature/datasets"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/", h.HandleReconcile)
	group.Post("/inspect", h.HandleInspect)
	group.Get("/datasets", h.HandleListDatasets)
}

// HandleReconcile reconciles two uploaded or object-backed CSV datasets.
// @Summary Reconcile two datasets
// @Description Reconcile two CSV datasets against a composite key. Datasets arrive as multipart files ('left', 'right') or as bucket object names ('left_object', 'right_object').
// @Tags reconcile
// @Accept mpfd
// @Produce json
// @Param left formData file false "Left dataset CSV"
// @Param right formData file false "Right dataset CSV"
// @Param left_object formData string false "Left dataset object name in the bucket"
// @Param right_object formData string false "Right dataset object name in the bucket"
// @Param left_key formData string true "Left key columns, comma separated"
// @Param right_key formData string true "Right key columns, comma separated"
// @Param amount_column formData string false "Amount column on both sides"
// @Param date_column formData string false "Date column on both sides"
// @Param tolerance formData number false "Absolute amount tolerance"
// @Param status query string false "Filter rows by status"
// @Param q query string false "Free-text search across key, reasons, and fields"
// @Param limit query int false "Maximum rows returned"
// @Success 200 {object} Response "Reconciliation result"
// @Failure 400 {object} map[string]string "Invalid configuration or dataset"
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cfg, err := configFromForm(c)
	if err != nil {
		return badRequest(c, err)
	}

	left, err := h.loadDataset(c, "left", "left_object")
	if err != nil {
		return badRequest(c, err)
	}
	right, err := h.loadDataset(c, "right", "right_object")
	if err != nil {
		return badRequest(c, err)
	}

	result, err := h.service.Run(left, right, cfg)
	if err != nil {
		if errors.Is(err, recon.ErrNoKeyColumns) {
			return badRequest(c, err)
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	status, err := statusFilter(c.Query("status"))
	if err != nil {
		return badRequest(c, err)
	}
	rows := recon.FilterRows(result.Rows, status, c.Query("q"))

	resp := Response{
		TotalRows:    len(result.Rows),
		FilteredRows: len(rows),
		Summary:      result.Summary,
	}
	if limit := c.QueryInt("limit"); limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	resp.Rows = rows

	return c.JSON(resp)
}

// HandleInspect reports a dataset's headers and guessed columns.
// @Summary Inspect a dataset
// @Description Parse an uploaded CSV and return its headers plus guessed key, amount, and date columns.
// @Tags reconcile
// @Accept mpfd
// @Produce json
// @Param file formData file true "Dataset CSV"
// @Success 200 {object} InspectReport "Dataset description"
// @Failure 400 {object} map[string]string "Invalid dataset"
// @Router /reconcile/inspect [post]
func (h *Handler) HandleInspect(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, errors.New("missing dataset file"))
	}

	table, err := parseUpload(fh)
	if err != nil {
		return badRequest(c, err)
	}

	return c.JSON(h.service.Inspect(table))
}

// HandleListDatasets lists the CSV dataset objects in the configured bucket.
// @Summary List dataset objects
// @Description List the CSV dataset objects available in the configured storage bucket.
// @Tags reconcile
// @Produce json
// @Success 200 {object} DatasetList "Available datasets"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /reconcile/datasets [get]
func (h *Handler) HandleListDatasets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.ListDatasets(c.Context())
	if err != nil {
		l.Error("Dataset listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(DatasetList{Objects: objects})
}

// loadDataset resolves one side from either an uploaded file or an object name.
func (h *Handler) loadDataset(c *fiber.Ctx, fileField, objectField string) (*datasets.Table, error) {
	if fh, err := c.FormFile(fileField); err == nil && fh != nil {
		return parseUpload(fh)
	}

	if object := strings.TrimSpace(c.FormValue(objectField)); object != "" {
		return h.service.FetchDataset(c.Context(), object)
	}

	return nil, errors.New("missing dataset: provide file '" + fileField + "' or field '" + objectField + "'")
}

func parseUpload(fh *multipart.FileHeader) (*datasets.Table, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return datasets.ParseCSV(f)
}

// configFromForm builds the engine configuration from form fields.
// Per-side fields (left_amount_column, right_date_column, ...) override the
// shared amount_column/date_column shorthands.
func configFromForm(c *fiber.Ctx) (recon.Config, error) {
	cfg := recon.Config{
		Left: recon.DatasetConfig{
			KeyColumns:   splitColumns(c.FormValue("left_key")),
			AmountColumn: firstNonEmpty(c.FormValue("left_amount_column"), c.FormValue("amount_column")),
			DateColumn:   firstNonEmpty(c.FormValue("left_date_column"), c.FormValue("date_column")),
		},
		Right: recon.DatasetConfig{
			KeyColumns:   splitColumns(c.FormValue("right_key")),
			AmountColumn: firstNonEmpty(c.FormValue("right_amount_column"), c.FormValue("amount_column")),
			DateColumn:   firstNonEmpty(c.FormValue("right_date_column"), c.FormValue("date_column")),
		},
	}

	if len(cfg.Left.KeyColumns) == 0 || len(cfg.Right.KeyColumns) == 0 {
		return cfg, recon.ErrNoKeyColumns
	}

	if raw := strings.TrimSpace(c.FormValue("tolerance")); raw != "" {
		tol, err := strconv.ParseFloat(raw, 64)
		if err != nil || tol < 0 {
			return cfg, errors.New("tolerance must be a non-negative number")
		}
		cfg.AmountTolerance = tol
	}

	return cfg, nil
}

// statusFilter validates the optional status query parameter.
func statusFilter(raw string) (recon.Status, error) {
	switch s := recon.Status(strings.TrimSpace(raw)); s {
	case "", recon.StatusMatched, recon.StatusMismatched, recon.StatusMissingInLeft,
		recon.StatusMissingInRight, recon.StatusDuplicateKey:
		return s, nil
	default:
		return "", errors.New("unknown status: " + raw)
	}
}

func splitColumns(raw string) []string {
	var cols []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			cols = append(cols, p)
		}
	}
	return cols
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
