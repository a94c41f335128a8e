// Package catalog holds the storefront's static product list.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

const imageBase = "https://images.unsplash.com/"

func product(id int, name, desc, img string, price int64, category string) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Description: desc,
		Image:       imageBase + img + "?auto=format&fit=crop&w=800&q=80",
		Price:       "From $" + decimal.NewFromInt(price).String(),
		PriceAmount: decimal.NewFromInt(price),
		Category:    category,
	}
}

var products = []models.Product{
	product(1, `MacBook Pro 16"`, "Supercharged by M3 Max", "photo-1517336714731-489689fd1ca8", 2499, "mac"),
	product(2, "MacBook Air", "Remarkably thin. Seriously capable.", "photo-1611186871348-b1ce696e52c9", 999, "mac"),
	product(3, "iMac", "Say hello to M3.", "photo-1527443224154-c4a3942d3acf", 1299, "mac"),
	product(4, "iPhone 15 Pro", "Titanium. So strong. So light. So Pro.", "photo-1603791239531-1dda55e194a6", 999, "iphone"),
	product(5, "iPhone 15", "New camera. New design. Newphoria.", "photo-1592750475338-74b7b21085ab", 799, "iphone"),
	product(6, "iPhone 14", "A total powerhouse.", "photo-1580910051074-3eb694886505", 699, "iphone"),
	product(7, "iPad Pro", "Supercharged by M2", "photo-1544244015-0df4b3ffc6b0", 799, "ipad"),
	product(8, "iPad Air", "Light. Bright. Full of might.", "photo-1557825835-70d97c4aa567", 599, "ipad"),
	product(9, "iPad", "Lovable. Drawable. Magical.", "photo-1585790050230-5dd28404ccb9", 449, "ipad"),
}

func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByCategory returns the products in category; an empty category returns all.
func ByCategory(category string) []models.Product {
	if category == "" {
		return All()
	}
	var out []models.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func Get(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
