package api

import (
	"context"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// Lookup queries the relation's current contents, optionally projected to
// q.Fields and filtered by q.Condition.
func Lookup(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, relation string, q types.LookupQuery) (*types.Result, error) {
	if err := types.ValidateRelationName(relation); err != nil {
		return nil, err
	}
	fields := q.Fields
	if fields == nil {
		fields = []string{}
	}
	payload := types.LookupRequest{
		QueryType:    types.QueryLookup,
		RelationName: relation,
		Fields:       fields,
		Condition:    q.Condition,
	}
	raw, err := Do(ctx, httpClient, baseURL, types.QueryLookup, payload, retry)
	if err != nil {
		return nil, err
	}
	return types.ParseResult(raw)
}
