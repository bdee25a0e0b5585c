package feed

import (
	"errors"

	"collection-sync/core/identity"
	"collection-sync/core/logger"
	"collection-sync/feature/feed/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for feeds.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.SyncReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the feed routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/feeds")
	group.Get("/", h.HandleListFeeds)
	group.Get("/:name/diff", h.HandleDiff)
	group.Post("/:name/sync", h.HandleSync)
}

// HandleListFeeds lists the published feeds.
// @Summary List Feeds
// @Description Lists the feeds that have a snapshot in the storage bucket.
// @Tags feeds
// @Produce json
// @Success 200 {object} map[string][]string "Feed names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds [get]
func (h *Handler) HandleListFeeds(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.ListFeeds(c.Context())
	if err != nil {
		l.Error("Listing feeds failed", zap.Error(err))
		return errorResponse(c, err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(fiber.Map{"feeds": names})
}

// HandleDiff reports how the stored feed differs from its snapshot.
// @Summary Diff Feed
// @Description Computes the edit script turning the stored items into the current snapshot.
// @Tags feeds
// @Produce json
// @Param name path string true "Feed name"
// @Success 200 {object} models.DiffReport "Diff Report"
// @Failure 400 {object} map[string]string "Invalid feed name"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 422 {object} map[string]string "Snapshot repeats an id"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds/{name}/diff [get]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("feed", name))

	report, err := h.service.Diff(c.Context(), name)
	if err != nil {
		l.Error("Feed diff failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(report)
}

// HandleSync mirrors the snapshot into the database.
// @Summary Sync Feed
// @Description Reconciles the stored items with the snapshot. With dry_run nothing is written.
// @Tags feeds
// @Produce json
// @Param name path string true "Feed name"
// @Param dry_run query boolean false "Compute without writing"
// @Success 200 {object} models.SyncReport "Sync Report"
// @Failure 400 {object} map[string]string "Invalid feed name"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds/{name}/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	name := c.Params("name")
	dryRun := c.QueryBool("dry_run")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("feed", name))

	report, err := h.service.Sync(c.Context(), name, dryRun)
	if err != nil {
		l.Error("Feed sync failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(report)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidName):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrSnapshotNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, identity.ErrDuplicateIdentity):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrNoDatabase):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
