package services

import (
	"context"
	"time"

	"tradebinder/internal/domain"
	"tradebinder/internal/imagestore"
	"tradebinder/internal/repos"
	"tradebinder/internal/validate"
)

// DefaultIngestTimeout bounds image persistence plus the repository insert
// for one submission.
const DefaultIngestTimeout = 15 * time.Second

// ImageUpload is one submitted photo, in submission order (front, then back).
type ImageUpload struct {
	Data []byte
	Name string // original filename; extension source
}

// Submission carries the metadata fields of one listing. TwoSided marks the
// front/back variant, which requires exactly two images.
type Submission struct {
	CardName   string
	SetName    string
	Expansion  string
	CardNumber string
	Condition  string
	Foil       bool
	Language   string
	TradeValue string
	Tradeable  *bool // nil defaults to true
	TwoSided   bool
	Images     []ImageUpload
}

type ListingService struct {
	Cards   *repos.CardRepo
	Images  *imagestore.Store
	Timeout time.Duration
}

func NewListingService(cards *repos.CardRepo, images *imagestore.Store) *ListingService {
	return &ListingService{Cards: cards, Images: images, Timeout: DefaultIngestTimeout}
}

// Submit validates the submission, persists its images and inserts the card
// record. Either all steps complete and the record is visible to queries, or
// a typed failure is returned and nothing is visible: images are staged
// outside the served path and promoted only after the insert succeeds.
func (s *ListingService) Submit(ctx context.Context, ownerID string, sub Submission) (domain.Card, error) {
	card, verr := s.validateSubmission(ownerID, sub)
	if verr != nil {
		return domain.Card{}, verr
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultIngestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	staged := make([]string, 0, len(sub.Images))
	for _, img := range sub.Images {
		if err := ctx.Err(); err != nil {
			s.Images.Discard(staged)
			return domain.Card{}, &domain.IngestionError{Stage: "image", Err: err}
		}
		ref, err := s.Images.Stage(img.Data, img.Name)
		if err != nil {
			s.Images.Discard(staged)
			return domain.Card{}, &domain.IngestionError{Stage: "image", Err: err}
		}
		staged = append(staged, ref)
	}

	card.ImageRefs = staged
	if err := ctx.Err(); err != nil {
		s.Images.Discard(staged)
		return domain.Card{}, &domain.IngestionError{Stage: "record", Err: err}
	}
	if err := s.Cards.Insert(&card); err != nil {
		s.Images.Discard(staged)
		return domain.Card{}, &domain.IngestionError{Stage: "record", Err: err}
	}
	if err := s.Images.Promote(staged); err != nil {
		s.Images.Discard(staged)
		return domain.Card{}, &domain.IngestionError{Stage: "image", Err: err}
	}
	return card, nil
}

// validateSubmission checks fail-fast, first failing rule wins: card name,
// image cardinality, trade value, then the enumerated fields.
func (s *ListingService) validateSubmission(ownerID string, sub Submission) (domain.Card, error) {
	owner, ok := validate.OwnerID(ownerID)
	if !ok {
		return domain.Card{}, &domain.ValidationError{Field: "ownerId", Reason: "missing or invalid owner"}
	}
	name, ok := validate.CardName(sub.CardName)
	if !ok {
		return domain.Card{}, &domain.ValidationError{Field: "cardName", Reason: "card name is required"}
	}
	want := 1
	if sub.TwoSided {
		want = 2
	}
	if len(sub.Images) != want {
		reason := "exactly one image is required"
		if sub.TwoSided {
			reason = "front and back images are both required"
		}
		return domain.Card{}, &domain.ValidationError{Field: "images", Reason: reason}
	}
	for _, img := range sub.Images {
		if !imagestore.AllowedExt(img.Name) {
			return domain.Card{}, &domain.ValidationError{Field: "images", Reason: "unsupported image type"}
		}
	}
	value, ok := validate.TradeValue(sub.TradeValue)
	if !ok {
		return domain.Card{}, &domain.ValidationError{Field: "tradeValue", Reason: "must be a non-negative number"}
	}
	cond, ok := validate.Condition(sub.Condition)
	if !ok {
		return domain.Card{}, &domain.ValidationError{Field: "condition", Reason: "unknown condition"}
	}
	lang, ok := validate.Language(sub.Language)
	if !ok {
		return domain.Card{}, &domain.ValidationError{Field: "language", Reason: "unknown language"}
	}

	tradeable := true
	if sub.Tradeable != nil {
		tradeable = *sub.Tradeable
	}
	return domain.Card{
		OwnerID:    owner,
		CardName:   name,
		SetName:    sub.SetName,
		Expansion:  sub.Expansion,
		CardNumber: sub.CardNumber,
		Condition:  cond,
		Foil:       sub.Foil,
		Language:   lang,
		TradeValue: value,
		Tradeable:  tradeable,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}
