package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// Join executes a join across the named relations and returns the projected
// result set.
func Join(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, q types.JoinQuery) (*types.Result, error) {
	if q.Type == "" {
		return nil, fmt.Errorf("join type must not be empty")
	}
	if len(q.Relations) == 0 {
		return nil, fmt.Errorf("join requires at least one relation")
	}
	for _, rel := range q.Relations {
		if err := types.ValidateRelationName(rel.RelationName); err != nil {
			return nil, err
		}
	}
	payload := types.JoinRequest{
		QueryType: types.QueryJoin,
		JoinType:  q.Type,
		Relations: q.Relations,
		Return: types.JoinReturn{
			Fields: q.ReturnFields,
			Option: q.Option,
		},
	}
	raw, err := Do(ctx, httpClient, baseURL, types.QueryJoin, payload, retry)
	if err != nil {
		return nil, err
	}
	return types.ParseResult(raw)
}
