package services

import (
	"tradebinder/internal/domain"
	"tradebinder/internal/query"
	"tradebinder/internal/repos"
)

type InventoryService struct {
	Cards *repos.CardRepo
}

func NewInventoryService(cards *repos.CardRepo) *InventoryService {
	return &InventoryService{Cards: cards}
}

// ByOwner reads one owner's records and runs them through the query engine.
func (s *InventoryService) ByOwner(ownerID string, p query.Params) ([]domain.Card, error) {
	cards, err := s.Cards.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return query.Run(cards, p), nil
}

// All reads every record regardless of owner.
func (s *InventoryService) All(p query.Params) ([]domain.Card, error) {
	cards, err := s.Cards.ListAll()
	if err != nil {
		return nil, err
	}
	return query.Run(cards, p), nil
}

func (s *InventoryService) Get(id int64) (domain.Card, error) {
	return s.Cards.Get(id)
}

// SetTradeable writes the explicit state and returns the authoritative
// post-update record.
func (s *InventoryService) SetTradeable(id int64, v bool) (domain.Card, error) {
	return s.Cards.SetTradeable(id, v)
}

// Toggle flips the current state at the repository, never from an optimistic
// echo of what the caller last saw.
func (s *InventoryService) Toggle(id int64) (domain.Card, error) {
	return s.Cards.Toggle(id)
}
