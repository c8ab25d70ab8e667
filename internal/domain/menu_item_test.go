package domain

import (
	"testing"

	apperrors "foodapp/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMenuItem_ApplyDefaults(t *testing.T) {
	item := MenuItem{Name: "Soup", Price: ptr(4.0), Category: "Starters"}
	item.ApplyDefaults()

	require.NotNil(t, item.IsAvailable)
	assert.True(t, *item.IsAvailable)

	item.IsAvailable = ptr(false)
	item.ApplyDefaults()
	assert.False(t, *item.IsAvailable)
}

func TestValidate_MenuItem(t *testing.T) {
	tests := []struct {
		name    string
		item    MenuItem
		wantErr bool
		fields  []string
	}{
		{
			name: "valid",
			item: MenuItem{Name: "Soup", Price: ptr(4.0), Category: "Starters"},
		},
		{
			name: "zero price is allowed",
			item: MenuItem{Name: "Water", Price: ptr(0.0), Category: "Drinks"},
		},
		{
			name:    "negative price",
			item:    MenuItem{Name: "Soup", Price: ptr(-1.0), Category: "Starters"},
			wantErr: true,
			fields:  []string{"price"},
		},
		{
			name:    "missing price",
			item:    MenuItem{Name: "Soup", Category: "Starters"},
			wantErr: true,
			fields:  []string{"price"},
		},
		{
			name:    "missing name and category",
			item:    MenuItem{Price: ptr(1.0)},
			wantErr: true,
			fields:  []string{"name", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.item)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			ve, ok := apperrors.IsValidationError(err)
			require.True(t, ok)
			var fields []string
			for _, d := range ve.Details {
				fields = append(fields, d.Field)
			}
			assert.ElementsMatch(t, tt.fields, fields)
		})
	}
}

func TestSeedMenu(t *testing.T) {
	items := SeedMenu()
	require.Len(t, items, 4)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
		assert.NoError(t, Validate(item))
		require.NotNil(t, item.IsAvailable)
		assert.True(t, *item.IsAvailable)
		require.NotNil(t, item.ImageURL)
		assert.Contains(t, *item.ImageURL, "https://images.unsplash.com/photo-")
	}
	assert.Equal(t, []string{"Margherita Pizza", "Spaghetti Carbonara", "Caesar Salad", "Iced Lemon Tea"}, names)
	assert.Equal(t, 10.99, *items[0].Price)
	assert.Equal(t, "Drinks", items[3].Category)
}
