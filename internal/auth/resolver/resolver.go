package resolver

import (
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
)

// Resolver determines where a freshly authenticated identity lands.
// It is the only place where role-to-route logic lives.
type Resolver interface {
	Resolve(identity *auth.Identity) string
}

// RoleResolver sends staff to the dashboard and everyone else home.
type RoleResolver struct {
	StaffRoute   string
	DefaultRoute string
}

func NewRoleResolver() *RoleResolver {
	return &RoleResolver{StaffRoute: auth.RouteAdmin, DefaultRoute: auth.RouteHome}
}

func (r *RoleResolver) Resolve(identity *auth.Identity) string {
	if identity != nil && identity.IsStaff {
		return r.StaffRoute
	}
	return r.DefaultRoute
}
