package endpoint

import (
	"time"

	"go.uber.org/zap"

	"github.com/Wilsonthoma/Ecommerce-sub002/auth"
	"github.com/Wilsonthoma/Ecommerce-sub002/client"
	"github.com/Wilsonthoma/Ecommerce-sub002/config"
	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	"github.com/Wilsonthoma/Ecommerce-sub002/rest"
	"github.com/Wilsonthoma/Ecommerce-sub002/types"
)

// BackofficeConfig is the programmatic configuration surface of the
// service, built With* style and consumed through the config.Config
// interface by the route layer.
type BackofficeConfig struct {
	storeURL        string
	storeToken      string
	pageSizeOptions []int
	defaultPageSize int
	searchDebounce  time.Duration
	bulkConcurrency int
	bulkActions     config.BulkActions
	adminTokens     map[string]string
	naming          config.NamingConventionFn
	logger          log.Logger
}

func (cfg BackofficeConfig) PageSizeOptions() []int {
	return cfg.pageSizeOptions
}

func (cfg BackofficeConfig) DefaultPageSize() int {
	return cfg.defaultPageSize
}

func (cfg BackofficeConfig) SearchDebounce() time.Duration {
	return cfg.searchDebounce
}

func (cfg BackofficeConfig) BulkConcurrency() int {
	return cfg.bulkConcurrency
}

func (cfg BackofficeConfig) SupportedBulkActions() config.BulkActions {
	return cfg.bulkActions
}

func (cfg BackofficeConfig) Naming() config.NamingConventionFn {
	return cfg.naming
}

func (cfg BackofficeConfig) Logger() log.Logger {
	return cfg.logger
}

func (cfg *BackofficeConfig) WithStoreToken(storeToken string) *BackofficeConfig {
	cfg.storeToken = storeToken
	return cfg
}

func (cfg *BackofficeConfig) WithPageSizeOptions(options []int) *BackofficeConfig {
	cfg.pageSizeOptions = options
	return cfg
}

func (cfg *BackofficeConfig) WithDefaultPageSize(pageSize int) *BackofficeConfig {
	cfg.defaultPageSize = pageSize
	return cfg
}

func (cfg *BackofficeConfig) WithSearchDebounce(debounce time.Duration) *BackofficeConfig {
	cfg.searchDebounce = debounce
	return cfg
}

func (cfg *BackofficeConfig) WithBulkConcurrency(concurrency int) *BackofficeConfig {
	cfg.bulkConcurrency = concurrency
	return cfg
}

func (cfg *BackofficeConfig) WithBulkActions(actions config.BulkActions) *BackofficeConfig {
	cfg.bulkActions = actions
	return cfg
}

func (cfg *BackofficeConfig) WithAdminTokens(tokens map[string]string) *BackofficeConfig {
	cfg.adminTokens = tokens
	return cfg
}

func (cfg *BackofficeConfig) WithNaming(naming config.NamingConventionFn) *BackofficeConfig {
	cfg.naming = naming
	return cfg
}

// NewEndpoint builds the service against a real store API client.
func (cfg BackofficeConfig) NewEndpoint() *Backoffice {
	storeClient := client.NewHTTPClient(cfg.storeURL, cfg.storeToken, cfg.logger)
	return cfg.newEndpointWithClient(storeClient)
}

func (cfg BackofficeConfig) newEndpointWithClient(storeClient client.StoreClient) *Backoffice {
	return &Backoffice{
		routeGen:    rest.NewRouteGenerator(storeClient, cfg),
		adminTokens: cfg.adminTokens,
		logger:      cfg.logger,
	}
}

// Backoffice serves the admin list screens over HTTP.
type Backoffice struct {
	routeGen    *rest.RouteGenerator
	adminTokens map[string]string
	logger      log.Logger
}

func NewEndpointConfig(storeURL string) (*BackofficeConfig, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewEndpointConfigWithLogger(log.NewZapLogger(logger), storeURL), nil
}

func NewEndpointConfigWithLogger(logger log.Logger, storeURL string) *BackofficeConfig {
	return &BackofficeConfig{
		storeURL:        storeURL,
		pageSizeOptions: dataview.DefaultPageSizeOptions,
		searchDebounce:  dataview.DefaultDebounce,
		bulkConcurrency: dataview.DefaultBulkConcurrency,
		bulkActions:     config.BulkDelete | config.BulkSetStatus,
		naming:          config.NewDefaultNaming,
		logger:          logger,
	}
}

// Routes returns the screen routes, wrapped by the auth boundary when
// admin tokens are configured.
func (e *Backoffice) Routes(prefix string) []types.Route {
	routes := e.routeGen.Routes(prefix)

	if len(e.adminTokens) > 0 {
		authorizer := auth.NewTokenAuthorizer(e.adminTokens, e.logger)
		for i := range routes {
			routes[i].Handler = authorizer.Middleware(routes[i].Handler)
		}
	}

	return routes
}
