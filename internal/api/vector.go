package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// VectorSearch runs a similarity search against the service's vector index.
func VectorSearch(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, q types.VectorQuery) (*types.Result, error) {
	if len(q.QueryVector) == 0 {
		return nil, fmt.Errorf("query vector must not be empty")
	}
	payload := types.VectorSearchRequest{
		QueryType:       types.QueryVectorSearch,
		QueryVector:     q.QueryVector,
		AccessKeys:      q.AccessKeys,
		SearchRadius:    q.SearchRadius,
		NumberOfResults: q.NumberOfResults,
		FilterStatement: q.FilterStatement,
	}
	raw, err := Do(ctx, httpClient, baseURL, types.QueryVectorSearch, payload, retry)
	if err != nil {
		return nil, err
	}
	return types.ParseResult(raw)
}
