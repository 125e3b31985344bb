package endpoint

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"

	"github.com/Wilsonthoma/Ecommerce-sub002/client"
	"github.com/Wilsonthoma/Ecommerce-sub002/config"
	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	"github.com/Wilsonthoma/Ecommerce-sub002/rest/screens"
	"github.com/Wilsonthoma/Ecommerce-sub002/types"
)

// Path formats used to build and look up routes in tests.
const (
	ScreenPathFormat          = "/v1/screens/%s"
	ScreenSelectionPathFormat = "/v1/screens/%s/selection"
	ScreenBulkPathFormat      = "/v1/screens/%s/bulk"
	RecordSinglePathFormat    = "/v1/screens/%s/records/%s"
)

type routeList struct {
	cfg        config.Config
	client     client.StoreClient
	screens    map[string]*screens.Screen
	bulkRunner *dataview.BulkRunner
	naming     config.NamingConvention
	logger     log.Logger
	params     func(*http.Request, string) string
}

// Routes returns the screen routes mounted under the given prefix.
func Routes(prefix string, cfg config.Config, storeClient client.StoreClient) []types.Route {
	screenSet := make(map[string]*screens.Screen)
	for name, def := range screens.Registry() {
		source := client.ResourceSource{
			Client:   storeClient,
			Resource: def.Resource,
			Limit:    client.DefaultFetchLimit,
		}
		screenSet[name] = screens.New(def, cfg, source)
	}

	rl := routeList{
		cfg:        cfg,
		client:     storeClient,
		screens:    screenSet,
		bulkRunner: dataview.NewBulkRunner(cfg.BulkConcurrency(), cfg.Logger()),
		naming:     cfg.Naming()(),
		logger:     cfg.Logger(),
		params: func(r *http.Request, name string) string {
			return httprouter.ParamsFromContext(r.Context()).ByName(name)
		},
	}

	return []types.Route{
		{
			Method:  http.MethodGet,
			Pattern: path.Join(prefix, "/v1/screens/:screenName"),
			Handler: http.HandlerFunc(rl.GetScreen),
		},
		{
			Method:  http.MethodPost,
			Pattern: path.Join(prefix, "/v1/screens/:screenName/selection"),
			Handler: http.HandlerFunc(rl.PostSelection),
		},
		{
			Method:  http.MethodPost,
			Pattern: path.Join(prefix, "/v1/screens/:screenName/bulk"),
			Handler: http.HandlerFunc(rl.PostBulk),
		},
		{
			Method:  http.MethodPatch,
			Pattern: path.Join(prefix, "/v1/screens/:screenName/records/:recordId"),
			Handler: http.HandlerFunc(rl.PatchRecord),
		},
		{
			Method:  http.MethodDelete,
			Pattern: path.Join(prefix, "/v1/screens/:screenName/records/:recordId"),
			Handler: http.HandlerFunc(rl.DeleteRecord),
		},
	}
}
