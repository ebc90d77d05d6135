package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenmart/pos/internal/events"
	"github.com/greenmart/pos/internal/logging"
	"github.com/greenmart/pos/internal/models"
	"github.com/greenmart/pos/internal/repo"
	"github.com/greenmart/pos/internal/transport"
)

type OrderService struct {
	Repo   *repo.GormRepo
	Events *events.Producer
}

func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must have at least one item", ErrValidation)
	}

	lines := make([]repo.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, repo.OrderLine{ProductID: item.ProductID, Quantity: qty})
	}

	order, err := s.Repo.CreateOrder(ctx, lines)
	if err != nil {
		if errors.Is(err, repo.ErrUnknownProduct) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		if errors.Is(err, repo.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}

	s.publishSale(ctx, order)
	return order, nil
}

func (s *OrderService) publishSale(ctx context.Context, order *models.Order) {
	count := 0
	for _, item := range order.Items {
		count += item.Quantity
	}

	event := map[string]any{
		"type":       "sale_completed",
		"order_id":   order.ID,
		"total":      order.TotalPrice,
		"item_count": count,
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pubCtx, events.TopicSaleEvents, fmt.Sprint(order.ID), event); err != nil {
		logging.FromContext(ctx).Warn("kafka_publish_failed", "topic", events.TopicSaleEvents, "error", err)
	}
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.Repo.GetOrder(ctx, id)
}
