package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tradebinder/internal/services"
	"tradebinder/internal/validate"
)

type CartHandler struct {
	Cart *services.TradeCartService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

// View handles GET /api/trade-cart.
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.Cart.View(h.ensureSID(c)))
}

// Add handles POST /api/trade-cart/items with body {"cardId": n}.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	var body struct {
		CardID int64 `json:"cardId"`
	}
	if err := c.BodyParser(&body); err != nil || body.CardID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing cardId"})
	}
	cv, err := h.Cart.Add(sid, body.CardID)
	if err != nil {
		return fail(c, "tradecart.add", err)
	}
	return c.JSON(cv)
}

// Remove handles DELETE /api/trade-cart/items/:id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.CardID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}
	return c.JSON(h.Cart.Remove(sid, id))
}
