package shopper

import (
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider"
)

const Name = "shopper"

// New returns the regular customer login against /auth/login/.
func New(client *api.Client) *provider.Endpoint {
	return provider.NewEndpoint(Name, client.Auth.Login, false)
}
