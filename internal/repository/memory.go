package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// MemoryStore holds every collection in process memory behind one lock.
// Listings keep insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	productsByID map[string]domain.Product
	productIDs   []string
	ordersByID   map[string]domain.Order
	orderIDs     []string
	usersByID    map[string]domain.User
	userIDs      []string
	cartsByUser  map[string]domain.Cart

	newID func() string
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		productsByID: make(map[string]domain.Product),
		ordersByID:   make(map[string]domain.Order),
		usersByID:    make(map[string]domain.User),
		cartsByUser:  make(map[string]domain.Cart),
		newID:        uuid.NewString,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Counts reports the current collection sizes.
func (m *MemoryStore) Counts(ctx context.Context) Counts {
	m.rlock(ctx)
	defer m.runlock(ctx)
	return Counts{
		Products: len(m.productsByID),
		Orders:   len(m.ordersByID),
		Users:    len(m.usersByID),
		Carts:    len(m.cartsByUser),
	}
}

var _ ProductRepository = (*MemoryStore)(nil)

// ProductRepository implementation
func (m *MemoryStore) Create(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p.ID = m.newID()
	p.CreatedAt = m.now()
	m.productsByID[p.ID] = *p
	m.productIDs = append(m.productIDs, p.ID)
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}

// Update replaces the stored record. ID and CreatedAt are kept from the stored copy.
func (m *MemoryStore) Update(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	old, ok := m.productsByID[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	m.productsByID[p.ID] = *p
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) (*domain.Product, error) {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.productsByID, id)
	m.productIDs = removeID(m.productIDs, id)
	return &p, nil
}

func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Product, 0, len(m.productIDs))
	for _, id := range m.productIDs {
		p := m.productsByID[id]
		if !f.match(p) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(s string) bool { return s == id })
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	o.ID = mo.store.newID()
	o.CreatedAt = mo.store.now()
	o.Items = domain.CloneItems(o.Items)
	mo.store.ordersByID[o.ID] = *o
	mo.store.orderIDs = append(mo.store.orderIDs, o.ID)
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyOrder(o)
	return &cp, nil
}

func (mo *MemoryOrders) Update(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	old, ok := mo.store.ordersByID[o.ID]
	if !ok {
		return ErrNotFound
	}
	o.CreatedAt = old.CreatedAt
	mo.store.ordersByID[o.ID] = copyOrder(*o)
	return nil
}

func (mo *MemoryOrders) List(ctx context.Context) ([]domain.Order, error) {
	return mo.filter(ctx, func(domain.Order) bool { return true }), nil
}

func (mo *MemoryOrders) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return mo.filter(ctx, func(o domain.Order) bool { return o.UserID == userID }), nil
}

func (mo *MemoryOrders) filter(ctx context.Context, keep func(domain.Order) bool) []domain.Order {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	out := make([]domain.Order, 0)
	for _, id := range mo.store.orderIDs {
		o := mo.store.ordersByID[id]
		if keep(o) {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

func copyOrder(o domain.Order) domain.Order {
	o.Items = domain.CloneItems(o.Items)
	return o
}

// UserRepository implementation
type MemoryUsers struct{ store *MemoryStore }

func NewMemoryUsers(store *MemoryStore) *MemoryUsers { return &MemoryUsers{store: store} }

var _ UserRepository = (*MemoryUsers)(nil)

func (mus *MemoryUsers) Create(ctx context.Context, u *domain.User) error {
	mus.store.wlock(ctx)
	defer mus.store.wunlock(ctx)
	u.ID = mus.store.newID()
	u.CreatedAt = mus.store.now()
	mus.store.usersByID[u.ID] = *u
	mus.store.userIDs = append(mus.store.userIDs, u.ID)
	return nil
}

func (mus *MemoryUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	mus.store.rlock(ctx)
	defer mus.store.runlock(ctx)
	u, ok := mus.store.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

// GetByEmail does an exact, case-sensitive match.
func (mus *MemoryUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	mus.store.rlock(ctx)
	defer mus.store.runlock(ctx)
	for _, id := range mus.store.userIDs {
		if u := mus.store.usersByID[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (mus *MemoryUsers) Update(ctx context.Context, u *domain.User) error {
	mus.store.wlock(ctx)
	defer mus.store.wunlock(ctx)
	old, ok := mus.store.usersByID[u.ID]
	if !ok {
		return ErrNotFound
	}
	u.CreatedAt = old.CreatedAt
	mus.store.usersByID[u.ID] = *u
	return nil
}

func (mus *MemoryUsers) List(ctx context.Context) ([]domain.User, error) {
	mus.store.rlock(ctx)
	defer mus.store.runlock(ctx)
	out := make([]domain.User, 0, len(mus.store.userIDs))
	for _, id := range mus.store.userIDs {
		out = append(out, mus.store.usersByID[id])
	}
	return out, nil
}

// CartRepository implementation
type MemoryCarts struct{ store *MemoryStore }

func NewMemoryCarts(store *MemoryStore) *MemoryCarts { return &MemoryCarts{store: store} }

var _ CartRepository = (*MemoryCarts)(nil)

// Get returns the user's cart, creating an empty one on first access.
func (mc *MemoryCarts) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	c, ok := mc.store.cartsByUser[userID]
	if !ok {
		c = domain.Cart{UserID: userID, Items: []domain.LineItem{}, CreatedAt: mc.store.now()}
		mc.store.cartsByUser[userID] = c
	}
	c.Items = domain.CloneItems(c.Items)
	return &c, nil
}

// Save stores the cart items. CreatedAt of an existing cart never changes.
func (mc *MemoryCarts) Save(ctx context.Context, c *domain.Cart) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if old, ok := mc.store.cartsByUser[c.UserID]; ok {
		c.CreatedAt = old.CreatedAt
	} else if c.CreatedAt.IsZero() {
		c.CreatedAt = mc.store.now()
	}
	c.Items = domain.CloneItems(c.Items)
	mc.store.cartsByUser[c.UserID] = *c
	return nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
