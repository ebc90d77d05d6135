package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/greenmart/pos/internal/models"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type OrderLine struct {
	ProductID uint
	Quantity  int
}

// CreateOrder re-reads every product inside one transaction, rejects unknown
// products and oversells, decrements stock and snapshots the price at sale
// time. The total is what the product table says now, not what the client
// displayed.
func (r *GormRepo) CreateOrder(ctx context.Context, lines []OrderLine) (*models.Order, error) {
	order := &models.Order{Status: models.OrderStatusCompleted}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		var total int64
		for _, ln := range lines {
			var prod models.Product
			if err := tx.First(&prod, ln.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrUnknownProduct, ln.ProductID)
				}
				return err
			}

			// Guarded decrement so two concurrent sales cannot oversell.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", prod.ID, ln.Quantity).
				Update("stock", gorm.Expr("stock - ?", ln.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, prod.Name)
			}

			item := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   prod.ID,
				Quantity:    ln.Quantity,
				PriceAtTime: prod.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, item)
			total += prod.Price * int64(ln.Quantity)
		}

		order.TotalPrice = total
		return tx.Model(order).Update("total_price", total).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
