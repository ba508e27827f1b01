package models

// CartItem is a snapshot of a flavor at the moment it was added to the cart.
// It deliberately copies name and price instead of referencing the catalog
// row, so later catalog edits do not change what the customer agreed to pay.
type CartItem struct {
	FlavorName string
	Price      float64
}
