package product

import (
	"fmt"
	"strings"

	"storefront-gateway/internal/money"
)

// shirt is a tracked product with Size x Color variants. X-M-BLUE has no
// stock.
func shirt() *Product {
	p := &Product{
		ID:             1,
		Name:           "Basic Shirt",
		Slug:           "basic-shirt",
		Price:          20000,
		ComparePrice:   money.Ptr(25000),
		MinPrice:       money.Ptr(20000),
		MaxPrice:       money.Ptr(24000),
		StockQuantity:  40,
		InStock:        true,
		TrackInventory: true,
		HasOptions:     true,
		Options: []OptionAxis{
			{Name: "Size", Values: []string{"S", "M", "L"}},
			{Name: "Color", Values: []string{"Red", "Blue"}},
		},
	}

	id := int64(100)
	for _, size := range []string{"S", "M", "L"} {
		for _, color := range []string{"Red", "Blue"} {
			id++
			stock := 10
			if size == "M" && color == "Blue" {
				stock = 0
			}
			price := money.Amount(20000)
			if size == "L" {
				price = 24000
			}
			p.Variants = append(p.Variants, Variant{
				ID:            id,
				SKU:           fmt.Sprintf("X-%s-%s", size, strings.ToUpper(color)),
				OptionValues:  map[string]string{"Size": size, "Color": color},
				Price:         price,
				ComparePrice:  money.Ptr(25000),
				StockQuantity: stock,
				InStock:       stock > 0,
				IsActive:      true,
			})
		}
	}
	return p
}

func simple() *Product {
	return &Product{
		ID:             2,
		Name:           "Mug",
		Slug:           "mug",
		Price:          10000,
		ComparePrice:   money.Ptr(12000),
		StockQuantity:  5,
		InStock:        true,
		TrackInventory: true,
	}
}

func variantBySKU(p *Product, sku string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].SKU == sku {
			return &p.Variants[i]
		}
	}
	return nil
}
