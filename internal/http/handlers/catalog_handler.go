package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradebinder/internal/catalog"
	applog "tradebinder/internal/log"
	"tradebinder/internal/validate"
)

// CatalogHandler fronts the external card-catalog lookup used to pre-fill
// submission metadata. When the catalog is unavailable the response degrades
// to an empty result so the client falls back to manual entry; catalog
// trouble never fails a listing.
type CatalogHandler struct {
	Catalog *catalog.Client
}

// Sets handles GET /api/catalog/sets.
func (h *CatalogHandler) Sets(c *fiber.Ctx) error {
	grouped, err := h.Catalog.SetsBySeries(c.UserContext())
	if err != nil {
		applog.Error(c, "catalog.sets", err, nil)
		return c.JSON(fiber.Map{"degraded": true, "sets": fiber.Map{}})
	}
	return c.JSON(fiber.Map{"sets": grouped})
}

// Cards handles GET /api/catalog/cards?q=name.
func (h *CatalogHandler) Cards(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid card name"})
	}
	cards, err := h.Catalog.SearchCards(c.UserContext(), q)
	if err != nil {
		applog.Error(c, "catalog.cards", err, nil)
		return c.JSON(fiber.Map{"degraded": true, "cards": []catalog.Card{}})
	}
	return c.JSON(fiber.Map{"cards": cards})
}

// Suggest handles GET /api/catalog/suggest?q=text, served from local state.
func (h *CatalogHandler) Suggest(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid card name"})
	}
	return c.JSON(fiber.Map{"suggestions": h.Catalog.Suggest(q, 10)})
}
