package tests

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
)

var _ model.ServiceRepository = &mockServiceRepository{}

type mockServiceRepository struct {
	store map[string]*model.Service
	err   error
}

func newMockServiceRepository() *mockServiceRepository {
	return &mockServiceRepository{store: make(map[string]*model.Service)}
}

func (m *mockServiceRepository) NextID() string { return uuid.NewString() }

func (m *mockServiceRepository) Create(_ context.Context, svc *model.Service) error {
	if m.err != nil {
		return m.err
	}
	stored := *svc
	m.store[svc.ServiceID] = &stored
	return nil
}

func (m *mockServiceRepository) Find(_ context.Context, serviceID string) (*model.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	if svc, ok := m.store[serviceID]; ok {
		clone := *svc
		return &clone, nil
	}
	return nil, model.ErrServiceNotFound
}

func (m *mockServiceRepository) FindByName(_ context.Context, name string) (*model.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, svc := range m.store {
		if svc.Name == name {
			clone := *svc
			return &clone, nil
		}
	}
	return nil, model.ErrServiceNotFound
}

func (m *mockServiceRepository) FindAll(_ context.Context) ([]model.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	services := make([]model.Service, 0, len(m.store))
	for _, svc := range m.store {
		services = append(services, *svc)
	}
	return services, nil
}

func (m *mockServiceRepository) Update(_ context.Context, svc *model.Service) error {
	if _, ok := m.store[svc.ServiceID]; !ok {
		return model.ErrServiceNotFound
	}
	stored := *svc
	m.store[svc.ServiceID] = &stored
	return nil
}

func (m *mockServiceRepository) Delete(_ context.Context, serviceID string) error {
	if _, ok := m.store[serviceID]; !ok {
		return model.ErrServiceNotFound
	}
	delete(m.store, serviceID)
	return nil
}

var _ model.ItemRepository = &mockItemRepository{}

type mockItemRepository struct {
	store           map[string]*model.Item
	pairLookupCalls int
}

func newMockItemRepository() *mockItemRepository {
	return &mockItemRepository{store: make(map[string]*model.Item)}
}

func (m *mockItemRepository) NextID() string { return uuid.NewString() }

func (m *mockItemRepository) Create(_ context.Context, item *model.Item) error {
	stored := *item
	m.store[item.ItemID] = &stored
	return nil
}

func (m *mockItemRepository) Find(_ context.Context, itemID string) (*model.Item, error) {
	if item, ok := m.store[itemID]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, model.ErrItemNotFound
}

func (m *mockItemRepository) FindAll(_ context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0, len(m.store))
	for _, item := range m.store {
		items = append(items, *item)
	}
	return items, nil
}

func (m *mockItemRepository) FindByService(_ context.Context, serviceName string) ([]model.Item, error) {
	var items []model.Item
	for _, item := range m.store {
		if item.ServiceName == serviceName {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (m *mockItemRepository) FindByServiceAndName(_ context.Context, serviceName, name string) (*model.Item, error) {
	m.pairLookupCalls++
	for _, item := range m.store {
		if item.ServiceName == serviceName && item.Name == name {
			clone := *item
			return &clone, nil
		}
	}
	return nil, model.ErrItemNotFound
}

func (m *mockItemRepository) Update(_ context.Context, item *model.Item) error {
	if _, ok := m.store[item.ItemID]; !ok {
		return model.ErrItemNotFound
	}
	stored := *item
	m.store[item.ItemID] = &stored
	return nil
}

func (m *mockItemRepository) Delete(_ context.Context, itemID string) error {
	if _, ok := m.store[itemID]; !ok {
		return model.ErrItemNotFound
	}
	delete(m.store, itemID)
	return nil
}

var _ model.OrderRepository = &mockOrderRepository{}

// mockOrderRepository simulates the document store, including the
// transactional counter. Guarded by a mutex so concurrent order creation
// behaves like the real transaction primitive.
type mockOrderRepository struct {
	mu      sync.Mutex
	store   map[string]*model.Order
	counter int64

	cleanupErr error
	counterErr error
	createErr  error
	findErr    error
	mergeErr   error
	deleteErr  error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{store: make(map[string]*model.Order)}
}

func (m *mockOrderRepository) NextID() string { return uuid.NewString() }

func (m *mockOrderRepository) NextOrderNumber(_ context.Context) (int64, error) {
	if m.counterErr != nil {
		return 0, m.counterErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return m.counter, nil
}

func (m *mockOrderRepository) Create(_ context.Context, order *model.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *order
	m.store[order.OrderID] = &stored
	return nil
}

func (m *mockOrderRepository) Find(_ context.Context, orderID string) (*model.Order, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if order, ok := m.store[orderID]; ok {
		clone := *order
		return &clone, nil
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) FindByUser(_ context.Context, userID string) ([]model.Order, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []model.Order
	for _, order := range m.store {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) FindPendingByUser(_ context.Context, userID string) (*model.Order, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.store {
		if order.UserID == userID && order.Status == model.StatusPending {
			clone := *order
			return &clone, nil
		}
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) FindByUserAndStatus(_ context.Context, userID string, status model.OrderStatus) ([]model.Order, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []model.Order
	for _, order := range m.store {
		if order.UserID == userID && order.Status == status {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) DeletePendingByUser(_ context.Context, userID string) error {
	if m.cleanupErr != nil {
		return m.cleanupErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, order := range m.store {
		if order.UserID == userID && order.Status == model.StatusPending {
			delete(m.store, id)
		}
	}
	return nil
}

func (m *mockOrderRepository) Merge(_ context.Context, orderID string, fields map[string]interface{}) error {
	if m.mergeErr != nil {
		return m.mergeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.store[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	for path, value := range fields {
		switch path {
		case "status":
			order.Status = value.(model.OrderStatus)
		case "userEmail":
			order.UserEmail = value.(string)
		case "userName":
			order.UserName = value.(string)
		case "userPhoneNo":
			order.UserPhoneNo = value.(string)
		case "address":
			order.Address = value.(string)
		case "paymentMethod":
			order.PaymentMethod = value.(string)
		case "pickupDate":
			order.PickupDate = value.(string)
		case "pickupTime":
			order.PickupTime = value.(string)
		case "orderItems":
			order.OrderItems = value.([]model.OrderItem)
		}
	}
	return nil
}

func (m *mockOrderRepository) Delete(_ context.Context, orderID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[orderID]; !ok {
		return model.ErrOrderNotFound
	}
	delete(m.store, orderID)
	return nil
}

func (m *mockOrderRepository) pendingCount(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, order := range m.store {
		if order.UserID == userID && order.Status == model.StatusPending {
			count++
		}
	}
	return count
}

var _ model.UserRepository = &mockUserRepository{}

type mockUserRepository struct {
	store map[string]*model.UserProfile
	err   error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{store: make(map[string]*model.UserProfile)}
}

func (m *mockUserRepository) Create(_ context.Context, profile *model.UserProfile) error {
	if m.err != nil {
		return m.err
	}
	stored := *profile
	m.store[profile.UserID] = &stored
	return nil
}

func (m *mockUserRepository) Find(_ context.Context, userID string) (*model.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if profile, ok := m.store[userID]; ok {
		clone := *profile
		return &clone, nil
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) Update(_ context.Context, profile *model.UserProfile) error {
	if _, ok := m.store[profile.UserID]; !ok {
		return model.ErrUserNotFound
	}
	stored := *profile
	m.store[profile.UserID] = &stored
	return nil
}

func (m *mockUserRepository) Delete(_ context.Context, userID string) error {
	if _, ok := m.store[userID]; !ok {
		return model.ErrUserNotFound
	}
	delete(m.store, userID)
	return nil
}

var _ model.IdentityProvider = &mockIdentityProvider{}

type mockIdentityProvider struct {
	created   map[string]string // uid -> email
	revoked   []string
	deleted   []string
	createErr error
	signInErr error
}

func newMockIdentityProvider() *mockIdentityProvider {
	return &mockIdentityProvider{created: make(map[string]string)}
}

func (m *mockIdentityProvider) CreateUser(_ context.Context, _, email, _, _ string) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	uid := uuid.NewString()
	m.created[uid] = email
	return uid, nil
}

func (m *mockIdentityProvider) SignIn(_ context.Context, email, _ string) (*model.Credentials, error) {
	if m.signInErr != nil {
		return nil, m.signInErr
	}
	for _, created := range m.created {
		if created == email {
			return &model.Credentials{IDToken: "id-token", RefreshToken: "refresh-token", ExpiresIn: "3600"}, nil
		}
	}
	return nil, model.ErrInvalidCredentials
}

func (m *mockIdentityProvider) Refresh(_ context.Context, refreshToken string) (*model.Credentials, error) {
	if refreshToken != "refresh-token" {
		return nil, model.ErrInvalidRefreshToken
	}
	return &model.Credentials{IDToken: "id-token-2", RefreshToken: "refresh-token-2", ExpiresIn: "3600"}, nil
}

func (m *mockIdentityProvider) VerifyToken(_ context.Context, idToken string) (*model.AuthToken, error) {
	if idToken != "id-token" {
		return nil, model.ErrInvalidBearerToken
	}
	return &model.AuthToken{UID: "uid-1"}, nil
}

func (m *mockIdentityProvider) RevokeTokens(_ context.Context, uid string) error {
	m.revoked = append(m.revoked, uid)
	return nil
}

func (m *mockIdentityProvider) DeleteUser(_ context.Context, uid string) error {
	m.deleted = append(m.deleted, uid)
	return nil
}

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	mu     sync.Mutex
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Events() []service.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.Event(nil), m.events...)
}

func (m *mockEventDispatcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}
