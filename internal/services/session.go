package services

import (
	"github.com/avoskres/parlor/internal/common"
	"github.com/avoskres/parlor/internal/models"
	"github.com/google/uuid"
)

// Session is the explicit per-session state container: the logged-in user,
// the cart, and the browse paging offset. It replaces the process-wide
// globals of the original storefront so handlers receive their state
// explicitly and multiple sessions stay possible.
//
// Session is not safe for concurrent use; the storefront runs one session on
// one goroutine.
type Session struct {
	id         string
	userName   string
	cart       []models.CartItem
	pageOffset int
}

// NewSession returns an empty, logged-out session with a fresh identifier.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// IsLoggedIn reports whether a user is currently authenticated.
func (s *Session) IsLoggedIn() bool { return s.userName != "" }

// UserName returns the logged-in username, or "" when logged out.
func (s *Session) UserName() string { return s.userName }

// Login records the authenticated user and starts browsing from the first page.
func (s *Session) Login(userName string) {
	s.userName = userName
	s.pageOffset = 0
}

// Logout clears the user, the cart, and the paging offset. The cart is tied
// to the authenticated session: it must not leak to the next login.
func (s *Session) Logout() {
	s.userName = ""
	s.cart = nil
	s.pageOffset = 0
}

// AddToCart appends a snapshot line item. Adding the same flavor twice yields
// two line items; there is no quantity aggregation.
func (s *Session) AddToCart(flavorName string, price float64) {
	s.cart = append(s.cart, models.CartItem{FlavorName: flavorName, Price: price})
}

// Items returns a copy of the cart line items in insertion order.
func (s *Session) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// Total sums the line prices without modifying the cart.
func (s *Session) Total() float64 {
	var total float64
	for _, item := range s.cart {
		total += item.Price
	}
	return total
}

// Checkout finalizes the cart: it returns the total and empties the cart.
// An empty cart returns common.ErrorEmptyCart and leaves the state untouched.
func (s *Session) Checkout() (float64, error) {
	if len(s.cart) == 0 {
		return 0, common.ErrorEmptyCart
	}
	total := s.Total()
	s.cart = nil
	return total, nil
}

// PageOffset returns the current browse offset.
func (s *Session) PageOffset() int { return s.pageOffset }

// ResetPaging rewinds browsing to the first page; called on every new search.
func (s *Session) ResetPaging() { s.pageOffset = 0 }

// AdvancePage moves the browse window forward by pageSize rows.
// There is no backward paging.
func (s *Session) AdvancePage(pageSize int) { s.pageOffset += pageSize }
