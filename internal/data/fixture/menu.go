package fixture

import "restaurant-booking/internal/data/entity"

func Menu() []*entity.MenuItem {
	return []*entity.MenuItem{
		{ID: "m-001", Name: "Bruschetta", Description: "Grilled bread, tomato, basil and garlic", Category: entity.MenuCategoryStarter, Price: 7.50, ImageURL: "/images/menu/bruschetta.jpg"},
		{ID: "m-002", Name: "Burrata", Description: "Fresh burrata with roasted cherry tomatoes", Category: entity.MenuCategoryStarter, Price: 11.00, ImageURL: "/images/menu/burrata.jpg"},
		{ID: "m-003", Name: "Calamari Fritti", Description: "Fried squid rings with lemon aioli", Category: entity.MenuCategoryStarter, Price: 9.50, ImageURL: "/images/menu/calamari.jpg"},
		{ID: "m-004", Name: "Ribeye Steak", Description: "300g dry-aged ribeye, pepper sauce", Category: entity.MenuCategoryMain, Price: 32.00, ImageURL: "/images/menu/ribeye.jpg"},
		{ID: "m-005", Name: "Seafood Linguine", Description: "Prawns, clams and mussels in white wine", Category: entity.MenuCategoryMain, Price: 21.00, ImageURL: "/images/menu/linguine.jpg"},
		{ID: "m-006", Name: "Mushroom Risotto", Description: "Arborio rice, porcini, parmesan", Category: entity.MenuCategoryMain, Price: 17.50, ImageURL: "/images/menu/risotto.jpg"},
		{ID: "m-007", Name: "Roast Chicken", Description: "Half chicken, rosemary potatoes", Category: entity.MenuCategoryMain, Price: 19.00, ImageURL: "/images/menu/chicken.jpg"},
		{ID: "m-008", Name: "Tiramisu", Description: "Mascarpone, espresso, cocoa", Category: entity.MenuCategoryDessert, Price: 8.00, ImageURL: "/images/menu/tiramisu.jpg"},
		{ID: "m-009", Name: "Panna Cotta", Description: "Vanilla cream with berry coulis", Category: entity.MenuCategoryDessert, Price: 7.00, ImageURL: "/images/menu/panna-cotta.jpg"},
		{ID: "m-010", Name: "Espresso", Description: "Single shot", Category: entity.MenuCategoryDrink, Price: 2.50, ImageURL: "/images/menu/espresso.jpg"},
		{ID: "m-011", Name: "House Red", Description: "Glass of Montepulciano d'Abruzzo", Category: entity.MenuCategoryDrink, Price: 6.50, ImageURL: "/images/menu/red-wine.jpg"},
		{ID: "m-012", Name: "Sparkling Water", Description: "750ml bottle", Category: entity.MenuCategoryDrink, Price: 3.50, ImageURL: "/images/menu/water.jpg"},
	}
}
