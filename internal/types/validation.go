package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ------------------------------
// Input Validation
// ------------------------------

// ValidateRelationName checks the relation name is present.
func ValidateRelationName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("relation name must not be empty")
	}
	return nil
}

// Validate enforces the mutation pairing rules. Row arity and value types
// are deliberately not checked; the client is a pass-through and the server
// owns the schema.
func (m Mutation) Validate() error {
	hasFields := m.Fields != nil
	hasValues := m.Values != nil
	if hasFields != hasValues {
		return fmt.Errorf("fields and values must be specified together")
	}
	hasContent := m.Content != nil && (m.Content.Text != "" || m.Content.Embeddings != nil)
	if hasContent && (m.Content.Text == "") != (m.Content.Embeddings == nil) {
		return fmt.Errorf("text and embeddings must be specified together")
	}
	if !hasFields && !hasContent {
		return fmt.Errorf("mutation requires fields/values or searchable content, or both")
	}
	return nil
}

// ConditionFromKeys renders a primary-key filter map into the service's
// condition syntax. Keys are sorted so the rendering is deterministic;
// values are JSON-encoded; terms are joined with " and ".
func ConditionFromKeys(primaryKeys map[string]any) (string, error) {
	if len(primaryKeys) == 0 {
		return "", fmt.Errorf("primary key filter must not be empty")
	}
	keys := make([]string, 0, len(primaryKeys))
	for k := range primaryKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	terms := make([]string, 0, len(keys))
	for _, k := range keys {
		v, err := json.Marshal(primaryKeys[k])
		if err != nil {
			return "", fmt.Errorf("encode filter value for %q: %w", k, err)
		}
		terms = append(terms, fmt.Sprintf("%s = %s", k, v))
	}
	return strings.Join(terms, " and "), nil
}
