package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// Create creates a new relation with the given columns. Column defaults
// (missing type, implicit first primary) are applied before serialisation.
func Create(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, relation string, columns []types.Column) (json.RawMessage, error) {
	if err := types.ValidateRelationName(relation); err != nil {
		return nil, err
	}
	payload := types.CreateRequest{
		QueryType:    types.QueryCreate,
		RelationName: relation,
		Fields:       types.NormalizeColumns(columns),
	}
	return Do(ctx, httpClient, baseURL, types.QueryCreate, payload, retry)
}
