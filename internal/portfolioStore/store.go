package portfolioStore

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateSymbol  = errors.New("duplicate holding symbol")
	ErrDuplicateFeedID  = errors.New("duplicate holding feed id")
	ErrInvalidCostBasis = errors.New("cost basis must be positive")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Store owns the fixed holdings and the latest price per symbol.
// Prices are written only through ApplyFeedPrices.
type Store struct {
	holdings       []model.Holding
	symbolByFeedID map[string]string

	mu     sync.RWMutex
	prices model.PriceMap
}

func New(holdings []model.Holding) (*Store, error) {
	s := &Store{
		holdings:       slices.Clone(holdings),
		symbolByFeedID: make(map[string]string, len(holdings)),
		prices:         make(model.PriceMap, len(holdings)),
	}

	for _, h := range holdings {
		if _, ok := s.prices[h.Symbol]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, h.Symbol)
		}
		if _, ok := s.symbolByFeedID[h.FeedID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeedID, h.FeedID)
		}
		if !h.CostBasis.IsPositive() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCostBasis, h.Symbol)
		}
		if h.Quantity.IsNegative() {
			return nil, fmt.Errorf("%w: %s", ErrNegativeQuantity, h.Symbol)
		}

		s.prices[h.Symbol] = decimal.Zero
		s.symbolByFeedID[h.FeedID] = h.Symbol
	}

	return s, nil
}

func MustNew(holdings []model.Holding) *Store {
	s, err := New(holdings)
	if err != nil {
		panic(err.Error())
	}
	return s
}

func (s *Store) Holdings() []model.Holding {
	return slices.Clone(s.holdings)
}

func (s *Store) FeedIDs() []string {
	ids := make([]string, 0, len(s.holdings))
	for _, h := range s.holdings {
		ids = append(ids, h.FeedID)
	}
	return ids
}

func (s *Store) Prices() model.PriceMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prices.Clone()
}

// ApplyFeedPrices overwrites prices of the symbols present in quotes (keyed by feed id).
// Unknown feed ids are ignored, symbols absent from quotes keep their last price.
func (s *Store) ApplyFeedPrices(quotes map[string]decimal.Decimal) (updated int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for feedID, price := range quotes {
		symbol, ok := s.symbolByFeedID[feedID]
		if !ok || price.IsNegative() {
			continue
		}
		s.prices[symbol] = price
		updated++
	}

	return updated
}
