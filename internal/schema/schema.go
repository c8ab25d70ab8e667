// Package schema publishes JSON Schema documents for the stored entity kinds.
package schema

import (
	"foodapp/internal/domain"

	"github.com/invopop/jsonschema"
)

const (
	User     = "user"
	Product  = "product"
	MenuItem = "menuitem"
	Order    = "order"
)

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
}

// All returns the schema of every entity kind, keyed by collection name.
func All() map[string]*jsonschema.Schema {
	r := reflector()
	return map[string]*jsonschema.Schema{
		User:     r.Reflect(&domain.User{}),
		Product:  r.Reflect(&domain.Product{}),
		MenuItem: r.Reflect(&domain.MenuItem{}),
		Order:    r.Reflect(&domain.Order{}),
	}
}
