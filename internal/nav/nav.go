// Package nav projects the session into the actions a page header offers.
package nav

import "github.com/DAbdulRaheem/ECommerce-WebSite/internal/session"

type Link struct {
	Label string
	Href  string
}

// Menu is what the header renders. It holds no behavior.
type Menu struct {
	// always present
	Cart     Link
	Wishlist Link
	Search   SearchForm

	// anonymous only
	Login  *Link
	SignUp *Link
	Seller *Link

	// authenticated only
	User   *UserMenu
	Logout *Link
}

// UserMenu is shown to signed-in users.
type UserMenu struct {
	Username string
	Admin    *Link
	Orders   Link
}

// SearchForm submits GET / with the term in q; the term is not validated.
type SearchForm struct {
	Action string
	Param  string
	Value  string
}

func Build(s session.Session, query string) Menu {
	m := Menu{
		Cart:     Link{Label: "Cart", Href: "/cart"},
		Wishlist: Link{Label: "Wishlist", Href: "/wishlist"},
		Search:   SearchForm{Action: "/", Param: "q", Value: query},
	}

	if !s.IsAuthenticated() {
		m.Login = &Link{Label: "Login", Href: "/login"}
		m.SignUp = &Link{Label: "Sign Up", Href: "/register"}
		m.Seller = &Link{Label: "Become a Seller", Href: "/seller/register"}
		return m
	}

	m.User = &UserMenu{
		Username: s.Username(),
		Orders:   Link{Label: "My Orders", Href: "/orders"},
	}
	if s.IsStaff() {
		m.User.Admin = &Link{Label: "Admin Dashboard", Href: "/admin"}
	}
	m.Logout = &Link{Label: "Logout", Href: "/logout"}
	return m
}

// ShowsAdmin reports whether the dashboard link is visible.
func (m Menu) ShowsAdmin() bool {
	return m.User != nil && m.User.Admin != nil
}
