package rest

import (
	"github.com/Wilsonthoma/Ecommerce-sub002/client"
	"github.com/Wilsonthoma/Ecommerce-sub002/config"
	restEndpointV1 "github.com/Wilsonthoma/Ecommerce-sub002/rest/endpoint/v1"
	"github.com/Wilsonthoma/Ecommerce-sub002/types"
)

type RouteGenerator struct {
	storeClient client.StoreClient
	config      config.Config
}

func NewRouteGenerator(
	storeClient client.StoreClient,
	cfg config.Config,
) *RouteGenerator {
	return &RouteGenerator{
		storeClient: storeClient,
		config:      cfg,
	}
}

func (g *RouteGenerator) Routes(prefix string) []types.Route {
	return restEndpointV1.Routes(prefix, g.config, g.storeClient)
}
