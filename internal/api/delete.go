package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// Delete removes the rows matched by a primary-key filter map.
func Delete(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, relation string, primaryKeys map[string]any) (json.RawMessage, error) {
	condition, err := types.ConditionFromKeys(primaryKeys)
	if err != nil {
		return nil, err
	}
	return DeleteWhere(ctx, httpClient, baseURL, retry, relation, condition)
}

// DeleteWhere removes the rows matched by a raw condition expression.
func DeleteWhere(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, relation, condition string) (json.RawMessage, error) {
	if err := types.ValidateRelationName(relation); err != nil {
		return nil, err
	}
	if condition == "" {
		return nil, fmt.Errorf("delete condition must not be empty")
	}
	payload := types.DeleteRequest{
		QueryType:    types.QueryDelete,
		RelationName: relation,
		Condition:    condition,
	}
	return Do(ctx, httpClient, baseURL, types.QueryDelete, payload, retry)
}
