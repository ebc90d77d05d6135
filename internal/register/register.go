package register

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greenmart/pos/internal/cart"
	"github.com/greenmart/pos/internal/checkout"
	"github.com/greenmart/pos/internal/models"
	"github.com/greenmart/pos/internal/pricing"
	"github.com/greenmart/pos/internal/transport"
)

var (
	ErrEmptyTicket   = errors.New("ticket is empty")
	ErrInvalidTender = errors.New("tender does not cover the total")
)

// OrderPlacer is the collaborator that turns a ticket into a persisted order.
// The register knows nothing about how the order is stored or re-priced.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error)
}

// Session is one open ticket on one register. It owns a ledger and dies with
// the process, the way the storefront cart dies with the tab.
type Session struct {
	ID       uuid.UUID `json:"id"`
	OpenedAt time.Time `json:"opened_at"`

	mu     sync.Mutex
	ledger *cart.Ledger
}

// Totals is what the ticket panel shows: running sums plus the quick-tender
// suggestions for the current charge total.
type Totals struct {
	Subtotal      int64   `json:"subtotal"`
	ItemCount     int     `json:"item_count"`
	Tax           int64   `json:"tax"`
	Total         int64   `json:"total"`
	PresetAmounts []int64 `json:"preset_amounts"`

	SubtotalDisplay string `json:"subtotal_display"`
	TaxDisplay      string `json:"tax_display"`
	TotalDisplay    string `json:"total_display"`
}

type Snapshot struct {
	ID       uuid.UUID   `json:"id"`
	OpenedAt time.Time   `json:"opened_at"`
	Lines    []cart.Line `json:"lines"`
	Totals   Totals      `json:"totals"`
}

type CheckoutResult struct {
	Order         *models.Order `json:"order"`
	Change        int64         `json:"change"`
	ChangeDisplay string        `json:"change_display"`
}

func (s *Session) AddProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Add(p)
}

func (s *Session) SetQuantity(productID uint, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.SetQuantity(productID, qty)
}

func (s *Session) RemoveProduct(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Remove(productID)
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Clear()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.ledger.Lines()
	return Snapshot{
		ID:       s.ID,
		OpenedAt: s.OpenedAt,
		Lines:    lines,
		Totals:   totalsOf(lines),
	}
}

func totalsOf(lines []cart.Line) Totals {
	subtotal := pricing.Subtotal(lines)
	tax := pricing.Tax(subtotal)
	total := pricing.ChargeTotal(subtotal)
	return Totals{
		Subtotal:      subtotal,
		ItemCount:     pricing.ItemCount(lines),
		Tax:           tax,
		Total:         total,
		PresetAmounts: checkout.PresetAmounts(total),

		SubtotalDisplay: pricing.FormatCLP(subtotal),
		TaxDisplay:      pricing.FormatCLP(tax),
		TotalDisplay:    pricing.FormatCLP(total),
	}
}

// Checkout validates the tender against the current total, places the order
// and clears the ticket. The ledger survives untouched on any failure, so the
// cashier can retry.
func (s *Session) Checkout(ctx context.Context, tender checkout.Tender, orders OrderPlacer) (*CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.ledger.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyTicket
	}

	total := pricing.ChargeTotal(pricing.Subtotal(lines))
	if !tender.Valid(total) {
		return nil, ErrInvalidTender
	}

	req := transport.CreateOrderRequest{}
	for _, ln := range lines {
		req.Items = append(req.Items, transport.CreateOrderItem{
			ProductID: ln.Product.ID,
			Quantity:  ln.Quantity,
		})
	}

	order, err := orders.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.ledger.Clear()

	change := tender.Change(total)
	return &CheckoutResult{
		Order:         order,
		Change:        change,
		ChangeDisplay: pricing.FormatCLP(change),
	}, nil
}

// Store holds the open sessions. Echo serves requests concurrently, so the
// map is guarded even though each terminal drives one session at a time.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

func (st *Store) Open() *Session {
	s := &Session{
		ID:       uuid.New(),
		OpenedAt: time.Now().UTC(),
		ledger:   cart.NewLedger(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Close(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}
