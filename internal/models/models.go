package models

import (
	"time"
)

type Product struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name     string `gorm:"size:120;not null"         json:"name"`
	Price    int64  `gorm:"not null"                  json:"price"`
	Category string `gorm:"size:50;not null"          json:"category"`
	ImageURL string `gorm:"size:250"                  json:"image_url"`
	Stock    int    `gorm:"not null;default:0"        json:"stock"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name string `gorm:"size:120;unique;not null"  json:"name"`
}

const OrderStatusCompleted = "completed"

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement"  json:"id"`
	TotalPrice int64       `gorm:"not null;default:0"        json:"total_price"`
	Status     string      `gorm:"size:50;not null"          json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `gorm:"foreignKey:OrderID"        json:"items"`
}

type OrderItem struct {
	ID          uint  `gorm:"primaryKey;autoIncrement"  json:"id"`
	OrderID     uint  `gorm:"index;not null"            json:"order_id"`
	ProductID   uint  `gorm:"not null"                  json:"product_id"`
	Quantity    int   `gorm:"not null;default:1"        json:"quantity"`
	PriceAtTime int64 `gorm:"not null"                  json:"price_at_time"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"size:120;unique;not null" json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
	IsActive     bool   `gorm:"not null;default:true"    json:"is_active"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"          json:"id"`
	Token     string `gorm:"unique;not null"     json:"token"`
	UserID    uint   `gorm:"index;not null"      json:"user_id"`
	ExpiresAt int64  `gorm:"not null"            json:"expires_at"`
	Revoked   bool   `gorm:"default:false"       json:"revoked"`
}
