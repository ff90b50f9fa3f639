package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/corebank/internal/domain"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client

	CreateFunc  func(ctx context.Context, client *domain.Client) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Client, error)
	UpdateFunc  func(ctx context.Context, client *domain.Client) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{clients: make(map[string]*domain.Client)}
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, client)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (m *MockClientRepository) Update(ctx context.Context, client *domain.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, client)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var clients []*domain.Client
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	return clients, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc      func(ctx context.Context, account *domain.Account) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Account, error)
	GetByNumberFunc func(ctx context.Context, number string) (*domain.Account, error)
	SetActiveFunc   func(ctx context.Context, id string, active bool, updatedAt time.Time) error
	ListFunc        func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByClientFn  func(ctx context.Context, clientID string) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Number == account.Number {
			return domain.ErrDuplicateAccountNumber
		}
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Active = active
	a.UpdatedAt = updatedAt
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (m *MockAccountRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Account, error) {
	if m.ListByClientFn != nil {
		return m.ListByClientFn(ctx, clientID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		if a.ClientID == clientID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

// MockMovementRepository is a mock implementation of MovementRepository.
// The default behavior keeps movements in insertion order, which doubles as
// creation order for the balance chain.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements []*domain.Movement

	AppendFunc           func(ctx context.Context, movement *domain.Movement) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Movement, error)
	LatestFunc           func(ctx context.Context, accountID string) (*domain.Movement, error)
	ListByAccountFunc    func(ctx context.Context, accountID string) ([]*domain.Movement, error)
	SumDebitsBetweenFunc func(ctx context.Context, accountID string, from, to time.Time) (domain.Money, error)
	UpdateKindFunc       func(ctx context.Context, id, kind string) error
	DeleteFunc           func(ctx context.Context, id string) error
	ListByClientFn       func(ctx context.Context, clientID string, from, to time.Time) ([]*domain.Movement, error)
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{}
}

func (m *MockMovementRepository) Append(ctx context.Context, movement *domain.Movement) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *movement
	m.movements = append(m.movements, &clone)
	return nil
}

func (m *MockMovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, mv := range m.movements {
		if mv.ID == id {
			clone := *mv
			return &clone, nil
		}
	}
	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) Latest(ctx context.Context, accountID string) (*domain.Movement, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.movements) - 1; i >= 0; i-- {
		if m.movements[i].AccountID == accountID {
			clone := *m.movements[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Movement, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Movement
	for i := len(m.movements) - 1; i >= 0; i-- {
		if m.movements[i].AccountID == accountID {
			clone := *m.movements[i]
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (m *MockMovementRepository) SumDebitsBetween(ctx context.Context, accountID string, from, to time.Time) (domain.Money, error) {
	if m.SumDebitsBetweenFunc != nil {
		return m.SumDebitsBetweenFunc(ctx, accountID, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total domain.Money
	for _, mv := range m.movements {
		if mv.AccountID != accountID || !mv.Amount.IsNegative() {
			continue
		}
		if mv.CreatedAt.Before(from) || !mv.CreatedAt.Before(to) {
			continue
		}
		total = total.Add(mv.Amount.Abs())
	}
	return total, nil
}

func (m *MockMovementRepository) UpdateKind(ctx context.Context, id, kind string) error {
	if m.UpdateKindFunc != nil {
		return m.UpdateKindFunc(ctx, id, kind)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mv := range m.movements {
		if mv.ID == id {
			mv.Kind = kind
			return nil
		}
	}
	return domain.ErrMovementNotFound
}

func (m *MockMovementRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, mv := range m.movements {
		if mv.ID == id {
			m.movements = append(m.movements[:i], m.movements[i+1:]...)
			return nil
		}
	}
	return domain.ErrMovementNotFound
}

func (m *MockMovementRepository) ListByClientBetween(ctx context.Context, clientID string, from, to time.Time) ([]*domain.Movement, error) {
	if m.ListByClientFn != nil {
		return m.ListByClientFn(ctx, clientID, from, to)
	}
	// The default store does not model account ownership; tests drive this
	// through ListByClientFn when they need it.
	return nil, nil
}

// Len reports how many movements are stored.
func (m *MockMovementRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.movements)
}

// MockClock is a controllable Clock.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// MockIDGenerator hands out sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (g *MockIDGenerator) Generate() string {
	if g.GenerateFunc != nil {
		return g.GenerateFunc()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%04d", g.next)
}
