package menu

// MenuItemResponse carries the id of a newly stored menu item.
type MenuItemResponse struct {
	ID string `json:"id"`
}
