package service

import (
	"context"
	"fmt"
	"time"

	"github.com/greenmart/pos/internal/cache"
	"github.com/greenmart/pos/internal/events"
	"github.com/greenmart/pos/internal/logging"
	"github.com/greenmart/pos/internal/models"
	"github.com/greenmart/pos/internal/repo"
	"github.com/greenmart/pos/internal/search"
	"github.com/greenmart/pos/internal/transport"
)

type CatalogService struct {
	Repo    *repo.GormRepo
	Cache   *cache.ProductCache
	Indexer *search.Indexer
	Events  *events.Producer
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	if items, ok := s.Cache.GetProducts(ctx); ok {
		return items, nil
	}

	items, err := s.Repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.Cache.SetProducts(ctx, items)
	return items, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Price == nil || req.Category == "" {
		return nil, fmt.Errorf("%w: name, price and category are required", ErrValidation)
	}
	if *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	prod := &models.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Stock:    req.Stock,
	}

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "product_created", created)
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, req transport.UpdateProductRequest, id uint) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	prod, err := s.Repo.UpdateProduct(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "product_updated", prod)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	l := logging.FromContext(ctx)
	s.Cache.Invalidate(ctx)
	if err := s.Indexer.DeleteProduct(ctx, id); err != nil {
		l.Warn("search_deindex_failed", "product_id", id, "error", err)
	}
	s.publish(ctx, "product_deleted", map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	return nil
}

// afterWrite runs the best-effort side effects of a catalog mutation: cache
// invalidation, search reindex and the product event. None of them fail the
// request.
func (s *CatalogService) afterWrite(ctx context.Context, eventType string, prod *models.Product) {
	l := logging.FromContext(ctx)

	s.Cache.Invalidate(ctx)

	if err := s.Indexer.IndexProduct(ctx, prod); err != nil {
		l.Warn("search_index_failed", "product_id", prod.ID, "error", err)
	}

	s.publish(ctx, eventType, map[string]any{
		"type":       eventType,
		"product_id": prod.ID,
		"name":       prod.Name,
	})
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pubCtx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("kafka_publish_failed", "topic", events.TopicProductEvents, "error", err)
	}
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	return s.Indexer.Search(ctx, query, from, size)
}
