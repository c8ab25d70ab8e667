package domain

// Product and User are declared collection shapes. Nothing in the API
// writes them; they are published through the schema endpoint.
type Product struct {
	Title       string  `json:"title" bson:"title" validate:"required" jsonschema:"title=Title,description=Product title"`
	Description *string `json:"description,omitempty" bson:"description,omitempty" jsonschema:"title=Description,description=Product description"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0" jsonschema:"title=Price,description=Price in dollars,minimum=0"`
	Category    string  `json:"category" bson:"category" validate:"required" jsonschema:"title=Category,description=Product category"`
	InStock     *bool   `json:"in_stock,omitempty" bson:"in_stock,omitempty" jsonschema:"title=In Stock,description=Whether product is in stock,default=true"`
}

type User struct {
	Name     string `json:"name" bson:"name" validate:"required" jsonschema:"title=Name,description=Full name"`
	Email    string `json:"email" bson:"email" validate:"required" jsonschema:"title=Email,description=Email address"`
	Address  string `json:"address" bson:"address" validate:"required" jsonschema:"title=Address,description=Address"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120" jsonschema:"title=Age,description=Age in years,minimum=0,maximum=120"`
	IsActive *bool  `json:"is_active,omitempty" bson:"is_active,omitempty" jsonschema:"title=Is Active,description=Whether user is active,default=true"`
}
