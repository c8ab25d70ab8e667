package domain

const imageQuery = "?q=80&w=1200&auto=format&fit=crop"

// SeedMenu returns the starter menu written to an empty menu collection.
func SeedMenu() []MenuItem {
	return []MenuItem{
		seedItem("Margherita Pizza", "Classic with tomatoes, mozzarella & basil", 10.99, "Pizza", "photo-1548365328-9f547fb09530"),
		seedItem("Spaghetti Carbonara", "Creamy sauce with pancetta & parmesan", 12.5, "Pasta", "photo-1523986371872-9d3ba2e2f642"),
		seedItem("Caesar Salad", "Romaine, croutons, parmesan & Caesar dressing", 8.75, "Salad", "photo-1551892374-ecf8754cf8c0"),
		seedItem("Iced Lemon Tea", "Refreshing home-brewed lemon tea", 3.5, "Drinks", "photo-1497534446932-c925b458314e"),
	}
}

func seedItem(name, description string, price float64, category, photo string) MenuItem {
	image := "https://images.unsplash.com/" + photo + imageQuery
	available := true
	return MenuItem{
		Name:        name,
		Description: &description,
		Price:       &price,
		Category:    category,
		ImageURL:    &image,
		IsAvailable: &available,
	}
}
