// Package nexusdb is the Go client for the hosted NexusDB service.
//
// Every operation is one synchronous POST to the service's query endpoint
// with a JSON payload discriminated by query type; the API key travels on
// each request in the API-Key header. The client holds no state beyond the
// credential and base URL and is safe for sequential reuse.
package nexusdb

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nexusdb/nexusdb-go/internal/api"
	"github.com/nexusdb/nexusdb-go/internal/types"
)

// DefaultBaseURL is the production query endpoint.
const DefaultBaseURL = "https://api.nexusdb.io/query"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
	retry   *types.RetryPolicy // nil means no retry
}

// New constructs a Client for the given API key. The base URL defaults to
// the production endpoint; override it with WithBaseURL. Returns
// ErrMissingAPIKey when apiKey is empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the HTTP transport so every request carries the API-Key header.
	c.wrapTransportWithAPIKey()

	return c, nil
}

// wrapTransportWithAPIKey wraps the HTTP client's transport to attach the
// configured credential to all outgoing requests.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to add the API-Key header.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("API-Key", t.apiKey)
	return t.base.RoundTrip(cloned)
}

// BaseURL returns the endpoint the client posts queries to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Relation operations - delegated to internal/api
// --------------------------------------------------------------------

// Create creates a new relation with the specified columns. A column with no
// type is sent as "Any?"; when no column is marked primary, the first one is.
func (c *Client) Create(ctx context.Context, relation string, columns []Column) (json.RawMessage, error) {
	return api.Create(ctx, c.http, c.baseURL, c.retry, relation, columns)
}

// EditFields edits the relation's columns, optionally adding new ones.
func (c *Client) EditFields(ctx context.Context, relation string, req EditFieldsRequest) (json.RawMessage, error) {
	return api.EditFields(ctx, c.http, c.baseURL, c.retry, relation, req)
}

// --------------------------------------------------------------------
// Row mutations - delegated to internal/api
// --------------------------------------------------------------------

// Insert adds rows to the relation. m.Values rows align positionally with
// m.Fields; no client-side type checking is performed.
func (c *Client) Insert(ctx context.Context, relation string, m Mutation) (json.RawMessage, error) {
	return api.Mutate(ctx, c.http, c.baseURL, c.retry, types.QueryInsert, relation, m)
}

// Upsert inserts rows, replacing existing rows with matching primary keys.
func (c *Client) Upsert(ctx context.Context, relation string, m Mutation) (json.RawMessage, error) {
	return api.Mutate(ctx, c.http, c.baseURL, c.retry, types.QueryUpsert, relation, m)
}

// Update modifies existing rows identified by their primary-key values.
func (c *Client) Update(ctx context.Context, relation string, m Mutation) (json.RawMessage, error) {
	return api.Mutate(ctx, c.http, c.baseURL, c.retry, types.QueryUpdate, relation, m)
}

// Delete removes the rows identified by the primary-key filter. The map is
// rendered into a condition with keys sorted and values JSON-encoded, so
// {"id": 1} deletes where id = 1.
func (c *Client) Delete(ctx context.Context, relation string, primaryKeys map[string]any) (json.RawMessage, error) {
	return api.Delete(ctx, c.http, c.baseURL, c.retry, relation, primaryKeys)
}

// DeleteWhere removes the rows matched by a raw condition expression, for
// filters the primary-key map form cannot express.
func (c *Client) DeleteWhere(ctx context.Context, relation, condition string) (json.RawMessage, error) {
	return api.DeleteWhere(ctx, c.http, c.baseURL, c.retry, relation, condition)
}

// --------------------------------------------------------------------
// Read queries - delegated to internal/api
// --------------------------------------------------------------------

// Lookup returns the relation's current contents, optionally projected and
// filtered. Render the result with Result.Tabulate for terminal display.
func (c *Client) Lookup(ctx context.Context, relation string, q LookupQuery) (*Result, error) {
	return api.Lookup(ctx, c.http, c.baseURL, c.retry, relation, q)
}

// Join executes a join query across the given relations.
func (c *Client) Join(ctx context.Context, q JoinQuery) (*Result, error) {
	return api.Join(ctx, c.http, c.baseURL, c.retry, q)
}

// VectorSearch runs a similarity search over the service's vector index.
func (c *Client) VectorSearch(ctx context.Context, q VectorQuery) (*Result, error) {
	return api.VectorSearch(ctx, c.http, c.baseURL, c.retry, q)
}

// RecursiveQuery traverses the relation from the rows matching
// startingCondition, following source-to-target edges.
func (c *Client) RecursiveQuery(ctx context.Context, relation, source, target, startingCondition string) (*Result, error) {
	return api.RecursiveQuery(ctx, c.http, c.baseURL, c.retry, relation, source, target, startingCondition)
}
