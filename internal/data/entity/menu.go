package entity

type MenuCategory string

const (
	MenuCategoryStarter MenuCategory = "starter"
	MenuCategoryMain    MenuCategory = "main"
	MenuCategoryDessert MenuCategory = "dessert"
	MenuCategoryDrink   MenuCategory = "drink"
)

type MenuItem struct {
	ID          string       `db:"id"`
	Name        string       `db:"name"`
	Description string       `db:"description"`
	Category    MenuCategory `db:"category"`
	Price       float64      `db:"price"`
	ImageURL    string       `db:"image_url"`
}
