package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryOption string

const (
	DeliveryOptionPickup   DeliveryOption = "pickup"
	DeliveryOptionDelivery DeliveryOption = "delivery"
)

// 注文者情報。フォーム入力そのまま（自由テキスト）。
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// 注文。作成後はStatus以外変更しない。
// Totalは作成時に一度だけ計算する（明細合計＋配達料）。
type Order struct {
	ID             string         `json:"id"`
	Customer       Customer       `json:"customer"`
	Items          []CartLine     `json:"items"`
	DeliveryOption DeliveryOption `json:"delivery_option"`
	Total          int64          `json:"total"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}
