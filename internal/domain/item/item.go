package item

// Priced is the capability every cart entry must satisfy. Implementations
// must return the same description and price on every call.
type Priced interface {
	Description() string
	Price() Price
}

// Kinded is implemented by items that can name their variant.
type Kinded interface {
	Kind() string
}

// Item kinds.
const (
	KindBook = "book"
	KindFood = "food"
)

var (
	_ Priced = Book{}
	_ Priced = Food{}
	_ Kinded = Book{}
	_ Kinded = Food{}
)

// Book is a priced item described by its title.
type Book struct {
	Title string
	Cost  Price
}

// Description returns the book title.
func (b Book) Description() string { return b.Title }

// Price returns the book price in minor units.
func (b Book) Price() Price { return b.Cost }

// Kind returns KindBook.
func (Book) Kind() string { return KindBook }

// Food is a priced grocery item.
type Food struct {
	Name string
	// CaloriesPerServing is informational only.
	CaloriesPerServing int
	Cost               Price
}

// Description returns the food name.
func (f Food) Description() string { return f.Name }

// Price returns the food price in minor units.
func (f Food) Price() Price { return f.Cost }

// Kind returns KindFood.
func (Food) Kind() string { return KindFood }
