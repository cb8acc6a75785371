// Package supabase provides a thin REST client for the hosted Supabase
// database. All catalogue reads and writes go through PostgREST; this client
// only builds query strings and moves JSON, the schema and search ranking
// live server-side.
package supabase

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxResponseBytes  = 8 << 20  // 8 MiB
	maxErrorBodyBytes = 32 << 10 // 32 KiB
)

// Config holds client configuration.
type Config struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// Client is a Supabase PostgREST client.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// New creates a new Supabase client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("supabase service key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport := http.DefaultTransport
		if base, ok := http.DefaultTransport.(*http.Transport); ok {
			cloned := base.Clone()
			if cloned.TLSClientConfig == nil {
				cloned.TLSClientConfig = &tls.Config{}
			}
			if cloned.TLSClientConfig.MinVersion < tls.VersionTLS12 {
				cloned.TLSClientConfig.MinVersion = tls.VersionTLS12
			}
			transport = cloned
		}
		httpClient = &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: httpClient,
	}, nil
}

// From starts a query builder for a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{client: c, table: table}
}

// RPC calls a stored procedure under /rest/v1/rpc. params is marshalled as
// the JSON body; query is an optional already-encoded PostgREST query string
// applied to the procedure's result set (projection, filters).
func (c *Client) RPC(ctx context.Context, fn string, params any, query string) ([]byte, error) {
	reqURL := c.baseURL + "/rest/v1/rpc/" + url.PathEscape(fn)
	if query != "" {
		reqURL += "?" + query
	}

	var body io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("marshal rpc params: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// QueryBuilder builds PostgREST queries.
type QueryBuilder struct {
	client  *Client
	table   string
	columns string
	filters []string
	orders  []string
	limit   int
}

// Select specifies the column projection, including nested relation specs.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	q.filters = append(q.filters, fmt.Sprintf("%s=eq.%v", column, value))
	return q
}

// In adds an IN filter.
func (q *QueryBuilder) In(column string, values []string) *QueryBuilder {
	q.filters = append(q.filters, fmt.Sprintf("%s=in.(%s)", column, strings.Join(values, ",")))
	return q
}

// TextSearch adds a full-text search filter on column. The query string uses
// `+` as an implicit AND separator.
func (q *QueryBuilder) TextSearch(column, query string) *QueryBuilder {
	q.filters = append(q.filters, fmt.Sprintf("%s=fts.%s", column, query))
	return q
}

// Order adds an ORDER BY clause.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.orders = append(q.orders, fmt.Sprintf("%s.%s", column, dir))
	return q
}

// Limit sets the LIMIT.
func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.limit = n
	return q
}

func (q *QueryBuilder) encode() string {
	params := url.Values{}
	if q.columns != "" {
		params.Set("select", q.columns)
	}
	for _, f := range q.filters {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) == 2 {
			params.Add(parts[0], parts[1])
		}
	}
	if len(q.orders) > 0 {
		params.Set("order", strings.Join(q.orders, ","))
	}
	if q.limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", q.limit))
	}
	return params.Encode()
}

func (q *QueryBuilder) tableURL() string {
	reqURL := q.client.baseURL + "/rest/v1/" + url.PathEscape(q.table)
	if encoded := q.encode(); encoded != "" {
		reqURL += "?" + encoded
	}
	return reqURL
}

// Execute runs the query as a SELECT and returns the raw JSON array.
func (q *QueryBuilder) Execute(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.tableURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	return q.client.do(req)
}

// ExecuteInsert inserts data (a row or a list of rows) into the table and
// returns the inserted representation.
func (q *QueryBuilder) ExecuteInsert(ctx context.Context, data any) ([]byte, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal insert body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.tableURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	return q.client.do(req)
}

// ExecuteDelete deletes the rows matched by the builder's filters.
func (q *QueryBuilder) ExecuteDelete(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, q.tableURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	return q.client.do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeAPIError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
