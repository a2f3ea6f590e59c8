package types

import "testing"

func TestValidateRelationName(t *testing.T) {
	t.Parallel()
	if err := ValidateRelationName("graph"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRelationName("  "); err == nil {
		t.Fatal("expected error for blank relation name")
	}
}

func TestMutation_Validate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		m       Mutation
		wantErr bool
	}{
		{
			name: "fields and values",
			m:    Mutation{Fields: []string{"id"}, Values: [][]any{{1}}},
		},
		{
			name:    "fields without values",
			m:       Mutation{Fields: []string{"id"}},
			wantErr: true,
		},
		{
			name:    "values without fields",
			m:       Mutation{Values: [][]any{{1}}},
			wantErr: true,
		},
		{
			name: "text with embeddings",
			m:    Mutation{Content: &SearchableContent{Text: "doc", Embeddings: []float64{0.1}}},
		},
		{
			name:    "text without embeddings",
			m:       Mutation{Content: &SearchableContent{Text: "doc"}},
			wantErr: true,
		},
		{
			name:    "embeddings without text",
			m:       Mutation{Content: &SearchableContent{Embeddings: []float64{0.1}}},
			wantErr: true,
		},
		{
			name:    "nothing at all",
			m:       Mutation{},
			wantErr: true,
		},
		{
			name: "both pairs",
			m: Mutation{
				Fields:  []string{"id"},
				Values:  [][]any{{1}},
				Content: &SearchableContent{Text: "doc", Embeddings: []float64{0.1}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConditionFromKeys(t *testing.T) {
	t.Parallel()
	got, err := ConditionFromKeys(map[string]any{"id": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "id = 1" {
		t.Fatalf("condition = %q, want id = 1", got)
	}

	// Keys are sorted; string values are JSON-quoted.
	got, err = ConditionFromKeys(map[string]any{"name": "Item 1", "id": 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `id = 2 and name = "Item 1"` {
		t.Fatalf("condition = %q", got)
	}

	if _, err := ConditionFromKeys(nil); err == nil {
		t.Fatal("expected error for empty filter")
	}
}
