package domain

// MenuItem is a dish offered in the app. Stored in the "menuitem" collection.
type MenuItem struct {
	Name        string   `json:"name" bson:"name" validate:"required" jsonschema:"title=Name,description=Dish name,minLength=1"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty" jsonschema:"title=Description,description=Dish description"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0" jsonschema:"title=Price,description=Price in dollars,minimum=0"`
	Category    string   `json:"category" bson:"category" validate:"required" jsonschema:"title=Category,description=Category like Pizza or Drinks or Desserts,minLength=1"`
	ImageURL    *string  `json:"image_url,omitempty" bson:"image_url,omitempty" jsonschema:"title=Image Url,description=Image URL for the dish"`
	IsAvailable *bool    `json:"is_available,omitempty" bson:"is_available,omitempty" jsonschema:"title=Is Available,description=Whether item is available,default=true"`
}

const MenuItemCollection = "menuitem"

func (m *MenuItem) ApplyDefaults() {
	if m.IsAvailable == nil {
		available := true
		m.IsAvailable = &available
	}
}
