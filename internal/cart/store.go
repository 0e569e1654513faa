package cart

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/kv"
	"github.com/petshopapp/petshop-go/internal/models"
)

// Snapshot is the full cart state at a point in time, handed out by
// value so holders can never reach back into the store.
type Snapshot struct {
	Owner      string                `json:"owner"`
	Items      []models.CartLineItem `json:"items"`
	TotalPrice float64               `json:"total_price"`
}

// Store holds the authoritative line-item collection for one owner key.
// Items keep insertion order and are unique per product id: re-adding a
// product raises its quantity instead of duplicating the entry. Every
// mutation recomputes the total and writes the whole snapshot through
// the kv store before returning.
//
// A Store is not safe for concurrent use; callers serialize access.
type Store struct {
	owner       string
	storage     kv.Store
	logger      *slog.Logger
	items       []models.CartLineItem
	total       float64
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewStore loads the persisted snapshot for owner, or starts empty when
// none exists. An unreadable snapshot is treated as "no prior cart" and
// logged, never surfaced: the cart must not take the caller down with it.
func NewStore(ctx context.Context, owner string, storage kv.Store, logger *slog.Logger) *Store {

	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		owner:       owner,
		storage:     storage,
		logger:      logger,
		subscribers: make(map[int]func(Snapshot)),
	}

	data, found, err := storage.Load(ctx, s.key())
	if err != nil || !found {
		if err != nil {
			logger.Warn("Failed to load cart snapshot, starting empty",
				slog.String("owner", owner), slog.String("error", err.Error()))
		}

		return s
	}

	var items []models.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("Malformed cart snapshot, starting empty",
			slog.String("owner", owner), slog.String("error", err.Error()))

		return s
	}

	s.items = items
	s.recomputeTotal()

	return s
}

func (s *Store) key() string {
	return kv.Key(kv.CartKeyPrefix, s.owner)
}

func (s *Store) Owner() string {
	return s.owner
}

// AddItem merges item into the cart. An existing entry for the same
// product id keeps its name, price and image and only gains quantity;
// a new product is appended at the end. Non-positive quantities are
// applied arithmetically, matching the backend's observed behaviour.
func (s *Store) AddItem(ctx context.Context, item models.CartLineItem) error {

	merged := false

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity
			merged = true

			break
		}
	}

	if !merged {
		s.items = append(s.items, item)
	}

	s.recomputeTotal()

	return s.persistAndNotify(ctx)
}

// SetQuantity replaces the quantity of the item with productID. A
// quantity of zero or less is a no-op; removal stays an explicit,
// separate operation. Unknown product ids are also a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID, quantity int) error {

	if quantity <= 0 {
		return nil
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.recomputeTotal()

			return s.persistAndNotify(ctx)
		}
	}

	return nil
}

// RemoveItem drops the line item with productID if present.
func (s *Store) RemoveItem(ctx context.Context, productID int) error {

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recomputeTotal()

			return s.persistAndNotify(ctx)
		}
	}

	return nil
}

// Clear empties the cart and persists the empty collection. The key is
// written, not deleted: a cleared cart loads back as empty, not absent.
func (s *Store) Clear(ctx context.Context) error {

	s.items = nil
	s.total = 0

	return s.persistAndNotify(ctx)
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)

	return items
}

func (s *Store) TotalPrice() float64 {
	return s.total
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Owner:      s.owner,
		Items:      s.Items(),
		TotalPrice: s.total,
	}
}

// Subscribe registers fn to be called synchronously with a value
// snapshot after every mutation. The returned function cancels the
// subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		delete(s.subscribers, id)
	}
}

func (s *Store) recomputeTotal() {

	var total float64

	for _, item := range s.items {
		total += item.UnitPrice * float64(item.Quantity)
	}

	s.total = total
}

func (s *Store) persistAndNotify(ctx context.Context) error {

	items := s.items
	if items == nil {
		items = []models.CartLineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.PersistenceError("Failed to serialize cart snapshot").WithError(err)
	}

	if err := s.storage.Save(ctx, s.key(), data); err != nil {
		return errors.PersistenceError("Failed to persist cart snapshot").WithError(err)
	}

	snapshot := s.Snapshot()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}

	return nil
}
