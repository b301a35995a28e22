package model

// カートの明細
// 商品フィールドのコピー＋数量。同じ商品は1行まで、Quantityは常に1以上。
type CartLine struct {
	ItemID      int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Quantity    int64    `json:"quantity"`
}

// NewCartLine は商品から数量1の明細を作る。
func NewCartLine(item Item) CartLine {
	return CartLine{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Quantity:    1,
	}
}
