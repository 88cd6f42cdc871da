package catalog

import (
	"thermodb/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog queries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/summary", h.HandleSummary)
	group.Get("/masters", h.HandleMasters)
	group.Get("/databases", h.HandleDatabases)
	group.Get("/species/:name", h.HandleSpeciesDetail)
}

// HandleDatabases lists the database objects available in storage.
// @Summary Available databases
// @Description Database objects available in the configured storage bucket.
// @Tags catalog
// @Produce json
// @Success 200 {array} string "Database Objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/databases [get]
func (h *Handler) HandleDatabases(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.Databases(c.Context())
	if err != nil {
		l.Error("Database listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(names)
}

// HandleSummary returns aggregate counts for the configured source catalog.
// @Summary Catalog summary
// @Description Aggregate element/species counts of the loaded catalog.
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Summary "Catalog Summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Catalog summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleMasters returns the master-species listing in declaration order.
// @Summary Master species
// @Description Master species with canonical names and product sets.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.MasterEntry "Master Species"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/masters [get]
func (h *Handler) HandleMasters(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	masters, err := h.service.Masters(c.Context())
	if err != nil {
		l.Error("Master listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(masters)
}

// HandleSpeciesDetail returns the detailed view of a single species.
// @Summary Species detail
// @Description Composition, charge and thermodynamic variant of a species.
// @Tags catalog
// @Produce json
// @Param name path string true "Source-format species name (e.g. 'SO4-2')"
// @Success 200 {object} models.SpeciesDetail "Species Detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/species/{name} [get]
func (h *Handler) HandleSpeciesDetail(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.SpeciesDetail(c.Context(), name)
	if err != nil {
		l.Warn("Species detail lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(detail)
}
