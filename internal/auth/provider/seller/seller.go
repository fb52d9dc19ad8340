package seller

import (
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider"
)

const Name = "seller"

// New returns the seller login against /auth/admin/login/, which rejects
// accounts that are not staff.
func New(client *api.Client) *provider.Endpoint {
	return provider.NewEndpoint(Name, client.Auth.AdminLogin, true)
}
