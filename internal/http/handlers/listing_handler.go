package handlers

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	applog "tradebinder/internal/log"
	"tradebinder/internal/services"
)

type ListingHandler struct {
	Listings *services.ListingService
}

// Create handles POST /api/listings: multipart metadata fields plus file
// parts "front" (required) and "back" (required for two-sided listings).
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	sub := services.Submission{
		CardName:   c.FormValue("cardName"),
		SetName:    c.FormValue("setName"),
		Expansion:  c.FormValue("expansion"),
		CardNumber: c.FormValue("cardNumber"),
		Condition:  c.FormValue("condition"),
		Foil:       c.FormValue("foil") == "true",
		Language:   c.FormValue("language"),
		TradeValue: c.FormValue("tradeValue"),
	}
	if v := c.FormValue("tradeable"); v != "" {
		t := v == "true"
		sub.Tradeable = &t
	}

	front, frontErr := c.FormFile("front")
	back, backErr := c.FormFile("back")
	// A back side, sent or declared, makes the listing two-sided; the
	// pipeline then insists on both sides being present together.
	sub.TwoSided = c.FormValue("twoSided") == "true" || backErr == nil

	if frontErr == nil {
		img, err := readUpload(front)
		if err != nil {
			return fail(c, "listing.create", err)
		}
		sub.Images = append(sub.Images, img)
	}
	if backErr == nil {
		img, err := readUpload(back)
		if err != nil {
			return fail(c, "listing.create", err)
		}
		sub.Images = append(sub.Images, img)
	}

	card, err := h.Listings.Submit(c.UserContext(), c.FormValue("ownerId"), sub)
	if err != nil {
		return fail(c, "listing.create", err)
	}
	resolveMedia(&card)
	applog.Audit(c, "listing.created", map[string]any{"id": card.ID, "owner": card.OwnerID})
	return c.Status(fiber.StatusCreated).JSON(card)
}

func readUpload(fh *multipart.FileHeader) (services.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return services.ImageUpload{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return services.ImageUpload{}, err
	}
	return services.ImageUpload{Data: data, Name: fh.Filename}, nil
}
