package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// RecursiveQuery walks the relation from rows matching startingCondition,
// following source-to-target edges until the traversal closes.
func RecursiveQuery(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, relation, source, target, startingCondition string) (*types.Result, error) {
	if err := types.ValidateRelationName(relation); err != nil {
		return nil, err
	}
	if source == "" || target == "" {
		return nil, fmt.Errorf("source and target fields must not be empty")
	}
	payload := types.RecursionRequest{
		QueryType: types.QueryRecursion,
		Relation: types.RecursionRelation{
			RelationName: relation,
			Fields:       []string{}, // populated by the server
			Condition:    startingCondition,
		},
		Source: source,
		Target: target,
	}
	raw, err := Do(ctx, httpClient, baseURL, types.QueryRecursion, payload, retry)
	if err != nil {
		return nil, err
	}
	return types.ParseResult(raw)
}
