// Package client implements the store API collaborator: the upstream
// e-commerce service the back office fetches collections from and applies
// mutations against. The engine treats it purely as an interface boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	e "github.com/Wilsonthoma/Ecommerce-sub002/rest/errors"
)

// DefaultFetchLimit bounds the collection snapshot fetched per screen. The
// engine filters and sorts in memory, so fetches are page limited at the
// source.
const DefaultFetchLimit = 500

const defaultTimeout = 15 * time.Second

// StoreClient is the mutation and fetch surface consumed by list screens
// and the bulk runner.
type StoreClient interface {
	List(ctx context.Context, resource string, page int, limit int) ([]dataview.Record, error)
	Update(ctx context.Context, resource string, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, resource string, id string) error
}

// listEnvelope mirrors the upstream list response shape.
type listEnvelope struct {
	Success    bool                     `json:"success"`
	Data       []map[string]interface{} `json:"data"`
	Pagination *Pagination              `json:"pagination,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

type mutationEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Pagination is the upstream page metadata, forwarded untouched.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     log.Logger
}

func NewHTTPClient(baseURL string, token string, logger log.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// List fetches one page-limited batch of a resource collection. A
// transport failure or a non-success envelope is returned as an
// UpstreamError; the caller decides how to degrade.
func (c *HTTPClient) List(ctx context.Context, resource string, page int, limit int) ([]dataview.Record, error) {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	if page <= 0 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, query.Encode())

	var envelope listEnvelope
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, e.NewUpstreamError(orUnknown(envelope.Error), 0)
	}

	records := make([]dataview.Record, len(envelope.Data))
	for i, item := range envelope.Data {
		records[i] = dataview.Record(item)
	}
	return records, nil
}

// Update applies a partial field change to a single record.
func (c *HTTPClient) Update(ctx context.Context, resource string, id string, fields map[string]interface{}) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, resource, url.PathEscape(id))
	return c.mutate(ctx, http.MethodPatch, endpoint, fields)
}

// Delete removes a single record.
func (c *HTTPClient) Delete(ctx context.Context, resource string, id string) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, resource, url.PathEscape(id))
	return c.mutate(ctx, http.MethodDelete, endpoint, nil)
}

func (c *HTTPClient) mutate(ctx context.Context, method string, endpoint string, body interface{}) error {
	var envelope mutationEnvelope
	if err := c.do(ctx, method, endpoint, body, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return e.NewUpstreamError(orUnknown(envelope.Error), 0)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method string, endpoint string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonBytes)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("store api request failed",
			"method", method,
			"url", endpoint,
			"error", err)
		return e.NewUpstreamError(err.Error(), 0)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return e.NewNotFoundError("resource not found")
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return e.NewUpstreamError("unexpected response", response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return e.NewUpstreamError("malformed response body: "+err.Error(), response.StatusCode)
	}
	return nil
}

func orUnknown(msg string) string {
	if msg == "" {
		return "request rejected"
	}
	return msg
}

// ResourceSource adapts one resource of a StoreClient to the engine's
// Source interface, fixing the fetch limit per screen.
type ResourceSource struct {
	Client   StoreClient
	Resource string
	Limit    int
}

func (s ResourceSource) Fetch(ctx context.Context) ([]dataview.Record, error) {
	return s.Client.List(ctx, s.Resource, 1, s.Limit)
}
