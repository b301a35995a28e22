package catalog

import "foodpreorder/internal/domain/model"

// DefaultItems は固定メニュー。
// メニューを変えるときはこの配列を編集する。
func DefaultItems() []model.Item {
	return []model.Item{
		{
			ID:          1,
			Name:        "Margherita Pizza",
			Description: "Classic pizza with tomato sauce, mozzarella, and basil",
			Price:       1299,
			Category:    model.CategoryMain,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Delicious Margherita pizza with fresh basil and melted cheese&id=food-1",
		},
		{
			ID:          2,
			Name:        "Garlic Bread",
			Description: "Freshly baked bread with garlic butter and herbs",
			Price:       599,
			Category:    model.CategoryAppetizer,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Golden brown garlic bread with parsley garnish&id=food-2",
		},
		{
			ID:          3,
			Name:        "Caesar Salad",
			Description: "Crisp romaine lettuce with Caesar dressing, croutons, and parmesan",
			Price:       899,
			Category:    model.CategoryAppetizer,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Fresh Caesar salad with croutons and parmesan cheese&id=food-3",
		},
		{
			ID:          4,
			Name:        "Spaghetti Carbonara",
			Description: "Classic Italian pasta with eggs, cheese, pancetta, and black pepper",
			Price:       1499,
			Category:    model.CategoryMain,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Creamy spaghetti carbonara with pancetta and black pepper&id=food-4",
		},
		{
			ID:          5,
			Name:        "Chocolate Brownie",
			Description: "Rich chocolate brownie with walnuts, served with ice cream",
			Price:       699,
			Category:    model.CategoryDessert,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Decadent chocolate brownie with walnuts and vanilla ice cream&id=food-5",
		},
		{
			ID:          6,
			Name:        "Iced Coffee",
			Description: "Chilled coffee with cream and optional flavored syrup",
			Price:       499,
			Category:    model.CategoryBeverage,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Refreshing iced coffee with cream and ice cubes&id=food-6",
		},
		{
			ID:          7,
			Name:        "BBQ Chicken Wings",
			Description: "Crispy chicken wings glazed in tangy BBQ sauce",
			Price:       1099,
			Category:    model.CategoryAppetizer,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Sticky BBQ chicken wings with celery sticks&id=food-7",
		},
		{
			ID:          8,
			Name:        "Cheeseburger",
			Description: "Juicy beef patty with cheese, lettuce, tomato, and special sauce",
			Price:       1199,
			Category:    model.CategoryMain,
			Image:       "https://placeholder-image-service.onrender.com/image/400x300?prompt=Classic cheeseburger with all the fixings&id=food-8",
		},
	}
}
