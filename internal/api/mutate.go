package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// Mutate sends an Insert, Upsert or Update for the given relation. The
// operation is the query type; the three differ only in that discriminator.
func Mutate(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, operation, relation string, m types.Mutation) (json.RawMessage, error) {
	if err := types.ValidateRelationName(relation); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	payload := types.MutationRequest{
		QueryType:         operation,
		RelationName:      relation,
		Fields:            m.Fields,
		Values:            m.Values,
		SearchableContent: m.Content,
		AccessKeys:        m.AccessKeys,
	}
	return Do(ctx, httpClient, baseURL, operation, payload, retry)
}
