package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	log2 "log"
	"net/http"
	"os"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Wilsonthoma/Ecommerce-sub002/config"
	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/Wilsonthoma/Ecommerce-sub002/endpoint"
	"github.com/Wilsonthoma/Ecommerce-sub002/log"
)

// Environment variables prefixed with "BACKOFFICE_" can override settings e.g. "BACKOFFICE_STORE_URL"
const envVarPrefix = "backoffice"

var cfgFile string
var logger log.Logger
var cfg *endpoint.BackofficeConfig

var serverCmd = &cobra.Command{
	Use:   os.Args[0] + " --store-url [URL] [OPTIONS]",
	Short: "Back-office list screens and bulk actions for the store API",
	Args: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("store-url") == "" {
			return errors.New("store-url is required")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		backoffice := createEndpoint()

		router := createRouter()
		for _, route := range backoffice.Routes("/") {
			router.Handler(route.Method, route.Pattern, route.Handler)
		}

		listenAndServe(router, viper.GetInt("port"))
	},
}

// Execute starts the back-office endpoint
func Execute() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log2.Fatalf("unable to initialize logger: %v", err)
	}

	logger = log.NewZapLogger(zapLogger)

	flags := serverCmd.PersistentFlags()

	flags.StringVarP(&cfgFile, "config", "c", "", "config file")
	flags.String("store-url", "", "base url of the upstream store API")
	flags.String("store-token", "", "bearer token for the store API")
	flags.Int("port", 8080, "endpoint port")

	flags.IntSlice("page-size-options", dataview.DefaultPageSizeOptions, "page sizes offered to list screens")
	flags.Int("default-page-size", 25, "initial page size of list screens")
	flags.Duration("search-debounce", dataview.DefaultDebounce, "trailing debounce window applied to search input")
	flags.Int("bulk-concurrency", dataview.DefaultBulkConcurrency, "concurrent store API calls per bulk action")
	flags.StringSlice("bulk-actions", []string{
		"delete",
		"set_status",
	}, "enabled bulk actions. options: delete,set_status")

	flags.StringToString("admin-tokens", nil, "static bearer token to admin user map; auth is disabled when empty")
	flags.Bool("request-logging", false, "enable request logging")
	flags.String("access-control-allow-origin", "", "Access-Control-Allow-Origin header value")

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			viper.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})

	cobra.OnInitialize(initialize)

	viper.SetEnvPrefix(envVarPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := serverCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createEndpoint() *endpoint.Backoffice {
	cfg = endpoint.NewEndpointConfigWithLogger(logger, viper.GetString("store-url"))

	actionNames := getStringSlice("bulk-actions")
	actions, err := config.Actions(actionNames...)
	if err != nil {
		logger.Fatal("invalid bulk action", "actions", actionNames, "error", err)
	}

	cfg.
		WithStoreToken(viper.GetString("store-token")).
		WithPageSizeOptions(viper.GetIntSlice("page-size-options")).
		WithDefaultPageSize(viper.GetInt("default-page-size")).
		WithSearchDebounce(viper.GetDuration("search-debounce")).
		WithBulkConcurrency(viper.GetInt("bulk-concurrency")).
		WithBulkActions(actions).
		WithAdminTokens(viper.GetStringMapString("admin-tokens"))

	return cfg.NewEndpoint()
}

func maybeAddRequestLogging(handler http.Handler) http.Handler {
	if viper.GetBool("request-logging") {
		handler = log.NewLoggingHandler(handler, logger)
	}
	return handler
}

func maybeAddCORS(handler http.Handler) http.Handler {
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", value)
			handler.ServeHTTP(w, r)
		})
	}
	return handler
}

func initialize() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			logger.Info("using config file",
				"file", viper.ConfigFileUsed())
		}
	}
}

func createRouter() *httprouter.Router {
	router := httprouter.New()
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Access-Control-Request-Method") != "" {
				header := w.Header()
				header.Set("Access-Control-Allow-Method", r.Header.Get("Access-Control-Request-Method"))
				header.Set("Access-Control-Allow-Headers", r.Header.Get("Access-Control-Request-Headers"))
				header.Set("Access-Control-Allow-Origin", value)
			}

			w.WriteHeader(http.StatusNoContent)
		})
	}
	return router
}

func listenAndServe(handler http.Handler, port int) {
	logger.Info("server listening",
		"port", port)
	handler = maybeAddCORS(maybeAddRequestLogging(handler))
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), handler)
	if err != nil {
		logger.Fatal("unable to start server",
			"port", port,
			"error", err)
	}
}

func getStringSlice(key string) []string {
	value := viper.GetStringSlice(key)
	slice, err := toStringSlice(value)
	if err != nil {
		logger.Fatal("invalid string slice value for setting",
			"error", err,
			"key", key,
			"value", value)
	}
	return slice
}

// toStringSlice splits entries that arrived as a single comma separated
// value, e.g. from an environment variable.
func toStringSlice(slice []string) ([]string, error) {
	result := make([]string, 0)
	for _, entry := range slice {
		stringReader := strings.NewReader(entry)
		csvReader := csv.NewReader(stringReader)
		parts, err := csvReader.Read()
		if err != nil {
			return nil, err
		}
		for _, part := range parts {
			result = append(result, strings.TrimSpace(part))
		}
	}
	return result, nil
}
