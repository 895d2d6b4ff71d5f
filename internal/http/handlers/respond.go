package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tradebinder/internal/domain"
	"tradebinder/internal/imagestore"
	applog "tradebinder/internal/log"
)

// withMediaURLs resolves each card's image references to their served paths.
func withMediaURLs(cards []domain.Card) []domain.Card {
	for i := range cards {
		resolveMedia(&cards[i])
	}
	return cards
}

func resolveMedia(c *domain.Card) {
	c.ImageURLs = make([]string, 0, len(c.ImageRefs))
	for _, ref := range c.ImageRefs {
		c.ImageURLs = append(c.ImageURLs, imagestore.URLPath(ref))
	}
}

// fail converts a typed domain failure into a JSON response. Validation
// failures are the caller's fault; everything else is a server-side problem.
func fail(c *fiber.Ctx, action string, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		applog.Security(c, action+".validation", map[string]any{"field": ve.Field, "reason": ve.Reason})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "card not found"})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong, please retry"})
}
