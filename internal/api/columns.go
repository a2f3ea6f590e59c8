package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexusdb/nexusdb-go/internal/types"
)

// EditFields edits columns of the relation, optionally adding new ones.
// The wire shape keeps empty fields/access_keys as [] rather than null.
func EditFields(ctx context.Context, httpClient *http.Client, baseURL string, retry *types.RetryPolicy, relation string, req types.EditFieldsRequest) (json.RawMessage, error) {
	if err := types.ValidateRelationName(relation); err != nil {
		return nil, err
	}
	fields := req.Fields
	if fields == nil {
		fields = []string{}
	}
	accessKeys := req.AccessKeys
	if accessKeys == nil {
		accessKeys = []string{}
	}
	payload := types.ColumnEditorRequest{
		QueryType:    types.QueryColumnEditor,
		RelationName: relation,
		Fields:       fields,
		AddColumns:   req.AddColumns,
		Condition:    req.Condition,
		AccessKeys:   accessKeys,
	}
	return Do(ctx, httpClient, baseURL, types.QueryColumnEditor, payload, retry)
}
