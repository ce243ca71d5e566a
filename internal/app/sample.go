package app

import "github.com/xenking/pricecart/internal/domain/item"

// SampleItems returns the reference cart contents in insertion order.
func SampleItems() []item.Priced {
	return []item.Priced{
		item.Book{Title: "Svelte and Sapper in Action", Cost: 2000},
		item.Food{Name: "Snickers bar", CaloriesPerServing: 229, Cost: 75},
		item.Food{Name: "Coke can", CaloriesPerServing: 140, Cost: 100},
	}
}
