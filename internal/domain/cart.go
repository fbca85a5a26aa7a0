package domain

import "time"

// CartItem is a menu item placed in a user's cart. Name, image and price
// are snapshotted at add time so later menu edits don't reprice the cart.
type CartItem struct {
	ID         string    `json:"_id"`
	Email      string    `json:"email"`
	MenuItemID string    `json:"menuId"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      string    `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
