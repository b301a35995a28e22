package receipt

import (
	"strings"
	"testing"
	"time"

	"foodpreorder/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildProducesPDF(t *testing.T) {
	order := model.Order{
		ID: "3f6c1c2e-0000-0000-0000-000000000000",
		Customer: model.Customer{
			Name:    "John Smith",
			Email:   "john@example.com",
			Phone:   "090-0000-0000",
			Address: "1-2-3 Somewhere",
		},
		Items: []model.CartLine{
			{ItemID: 1, Name: "Margherita Pizza", Price: 1299, Quantity: 3},
		},
		DeliveryOption: model.DeliveryOptionDelivery,
		Total:          4397,
		Status:         model.OrderStatusPending,
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := Build(order, 3897, 500)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Greater(t, len(data), 1000)
}

func TestBuildWithoutDeliveryFee(t *testing.T) {
	order := model.Order{
		ID:             "pickup-order",
		Customer:       model.Customer{Name: "Maria Cruz"},
		Items:          []model.CartLine{{ItemID: 2, Name: "Garlic Bread", Price: 599, Quantity: 1}},
		DeliveryOption: model.DeliveryOptionPickup,
		Total:          599,
		Status:         model.OrderStatusPending,
		CreatedAt:      time.Now(),
	}

	data, err := Build(order, 599, 0)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
