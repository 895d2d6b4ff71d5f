package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tradebinder/internal/domain"
	applog "tradebinder/internal/log"
	"tradebinder/internal/query"
	"tradebinder/internal/services"
	"tradebinder/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// queryParams reads the repeatable filter params plus sort and search text.
func queryParams(c *fiber.Ctx) query.Params {
	return query.Params{
		PriceRanges: multiQuery(c, "price"),
		Sets:        multiQuery(c, "set"),
		Conditions:  multiQuery(c, "condition"),
		Search:      strings.TrimSpace(c.Query("q")),
		Sort:        strings.TrimSpace(c.Query("sort")),
	}
}

func multiQuery(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Request().URI().QueryArgs().PeekMulti(key) {
		if s := strings.TrimSpace(string(v)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Owner handles GET /api/inventory/:ownerId.
func (h *InventoryHandler) Owner(c *fiber.Ctx) error {
	ownerID, ok := validate.OwnerID(c.Params("ownerId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "ownerId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid owner id"})
	}
	cards, err := h.Inv.ByOwner(ownerID, queryParams(c))
	if err != nil {
		return fail(c, "inventory.owner", err)
	}
	return c.JSON(fiber.Map{"cards": withMediaURLs(cards), "count": len(cards)})
}

// All handles GET /api/inventory.
func (h *InventoryHandler) All(c *fiber.Ctx) error {
	cards, err := h.Inv.All(queryParams(c))
	if err != nil {
		return fail(c, "inventory.all", err)
	}
	return c.JSON(fiber.Map{"cards": withMediaURLs(cards), "count": len(cards)})
}

// Tradeable handles PATCH /api/cards/:id/tradeable. A body with an explicit
// boolean sets that state; an empty body toggles the current one.
func (h *InventoryHandler) Tradeable(c *fiber.Ctx) error {
	id, ok := validate.CardID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}

	var body struct {
		Tradeable *bool `json:"tradeable"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
		}
	}

	var (
		card domain.Card
		err  error
	)
	if body.Tradeable != nil {
		card, err = h.Inv.SetTradeable(id, *body.Tradeable)
	} else {
		card, err = h.Inv.Toggle(id)
	}
	if err != nil {
		return fail(c, "inventory.tradeable", err)
	}
	resolveMedia(&card)
	applog.Audit(c, "tradeable.updated", map[string]any{"id": id, "tradeable": card.Tradeable})
	return c.JSON(card)
}
