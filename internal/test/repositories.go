package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

// OrderRepositoryStub serves orders from memory and records queries.
type OrderRepositoryStub struct {
	Orders  []model.Order
	ByID    map[int64]*model.Order
	ListErr error
	GetErr  error
	ListFn  func(context.Context, repository.OrderQuery) ([]model.Order, error)
	GetFn   func(context.Context, int64) (*model.Order, error)

	mu      sync.Mutex
	Queries []repository.OrderQuery
	GetIDs  []int64
}

// ListOrders returns configured orders regardless of filters.
func (s *OrderRepositoryStub) ListOrders(ctx context.Context, query repository.OrderQuery) ([]model.Order, error) {
	s.mu.Lock()
	s.Queries = append(s.Queries, query)
	s.mu.Unlock()

	if s.ListFn != nil {
		return s.ListFn(ctx, query)
	}
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Orders, nil
}

// GetOrder returns the order stored under id.
func (s *OrderRepositoryStub) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	s.GetIDs = append(s.GetIDs, id)
	s.mu.Unlock()

	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if order, ok := s.ByID[id]; ok {
		return order, nil
	}
	return nil, &domainErrors.UpstreamError{Op: "get order", StatusCode: 404}
}

// CatalogRepositoryStub serves products and collections from memory.
type CatalogRepositoryStub struct {
	Products       map[int64]*model.Product
	Collections    map[int64][]model.Collection
	ProductErr     error
	CollectionsErr error

	mu              sync.Mutex
	ProductCalls    []int64
	CollectionCalls []int64
}

// GetProduct returns the stored product or a 404 upstream error.
func (s *CatalogRepositoryStub) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	s.ProductCalls = append(s.ProductCalls, id)
	s.mu.Unlock()

	if s.ProductErr != nil {
		return nil, s.ProductErr
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, &domainErrors.UpstreamError{Op: "get product", StatusCode: 404}
}

// ProductCollections returns the stored collections for productID.
func (s *CatalogRepositoryStub) ProductCollections(ctx context.Context, productID int64) ([]model.Collection, error) {
	s.mu.Lock()
	s.CollectionCalls = append(s.CollectionCalls, productID)
	s.mu.Unlock()

	if s.CollectionsErr != nil {
		return nil, s.CollectionsErr
	}
	return s.Collections[productID], nil
}

// Calls returns copies of the recorded product and collection lookups.
func (s *CatalogRepositoryStub) Calls() (products, collections []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.ProductCalls...), append([]int64(nil), s.CollectionCalls...)
}

// ReminderSenderStub records reminders instead of sending them.
type ReminderSenderStub struct {
	SendFn func(context.Context, model.Reminder) error

	mu   sync.Mutex
	Sent []model.Reminder
}

// SendReminder delegates to SendFn when set and records successful sends.
func (s *ReminderSenderStub) SendReminder(ctx context.Context, reminder model.Reminder) error {
	if s.SendFn != nil {
		if err := s.SendFn(ctx, reminder); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, reminder)
	return nil
}

var (
	_ repository.OrderRepository   = (*OrderRepositoryStub)(nil)
	_ repository.CatalogRepository = (*CatalogRepositoryStub)(nil)
	_ repository.ReminderSender    = (*ReminderSenderStub)(nil)
)
