package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"tradebinder/internal/domain"
	"tradebinder/internal/repos"
)

// TradeCartService holds the per-session trade carts. Entries reference cards
// by id; the record itself stays owned by the repository.
type TradeCartService struct {
	Cards *repos.CardRepo

	mu    sync.Mutex
	carts map[string]*domain.TradeCart
}

func NewTradeCartService(cards *repos.CardRepo) *TradeCartService {
	return &TradeCartService{Cards: cards, carts: map[string]*domain.TradeCart{}}
}

type CartView struct {
	Items []domain.TradeCartEntry `json:"items"`
	Total decimal.Decimal         `json:"total"`
}

// Add looks the card up and inserts a snapshot entry into the session's cart.
// Adding an id already in the cart is a no-op.
func (s *TradeCartService) Add(sessionID string, cardID int64) (CartView, error) {
	card, err := s.Cards.Get(cardID)
	if err != nil {
		return CartView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.ensure(sessionID)
	cart.Add(card)
	return view(cart), nil
}

// Remove drops the entry if present; removing an unknown id is a no-op.
func (s *TradeCartService) Remove(sessionID string, cardID int64) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.ensure(sessionID)
	cart.Remove(cardID)
	return view(cart)
}

func (s *TradeCartService) View(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(s.ensure(sessionID))
}

func (s *TradeCartService) ensure(sessionID string) *domain.TradeCart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &domain.TradeCart{}
		s.carts[sessionID] = cart
	}
	return cart
}

func view(cart *domain.TradeCart) CartView {
	return CartView{Items: cart.Entries(), Total: cart.Total()}
}
