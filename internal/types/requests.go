package types

// ------------------------------
// Request Types
// ------------------------------

// Query type discriminators recognised by the service's query endpoint.
const (
	QueryCreate       = "Create"
	QueryInsert       = "Insert"
	QueryUpsert       = "Upsert"
	QueryUpdate       = "Update"
	QueryDelete       = "Delete"
	QueryLookup       = "Lookup"
	QueryJoin         = "Join"
	QueryColumnEditor = "ColumnEditor"
	QueryVectorSearch = "VectorSearch"
	QueryRecursion    = "Recursion"
)

// Column describes one column of a relation.
type Column struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Default   any    `json:"default"`
	IsPrimary bool   `json:"is_primary"`
}

// NormalizeColumns applies the service's column defaults: a missing type
// becomes "Any?" and, when no column is marked primary, the first column is.
func NormalizeColumns(columns []Column) []Column {
	primarySeen := false
	for _, col := range columns {
		if col.IsPrimary {
			primarySeen = true
			break
		}
	}

	out := make([]Column, len(columns))
	for i, col := range columns {
		if col.Type == "" {
			col.Type = "Any?"
		}
		if !primarySeen && i == 0 {
			col.IsPrimary = true
		}
		out[i] = col
	}
	return out
}

// CreateRequest is the wire payload for relation creation.
type CreateRequest struct {
	QueryType    string   `json:"query_type"`
	RelationName string   `json:"relation_name"`
	Fields       []Column `json:"fields"`
}

// SearchableContent carries the vector-search sidecar of a mutation:
// raw text with its embeddings plus optional metadata and references.
type SearchableContent struct {
	Text       string    `json:"text,omitempty"`
	Embeddings []float64 `json:"embeddings,omitempty"`
	Metadata   any       `json:"metadata,omitempty"`
	Reference  any       `json:"reference,omitempty"`
}

// Mutation holds the parameters shared by Insert, Upsert and Update.
// Fields and Values must be given together; Content's text and embeddings
// must be given together; at least one of the two pairs must be present.
type Mutation struct {
	Fields     []string
	Values     [][]any
	Content    *SearchableContent
	AccessKeys []string
}

// MutationRequest is the wire payload for Insert/Upsert/Update.
type MutationRequest struct {
	QueryType         string             `json:"query_type"`
	RelationName      string             `json:"relation_name"`
	Fields            []string           `json:"fields,omitempty"`
	Values            [][]any            `json:"values,omitempty"`
	SearchableContent *SearchableContent `json:"searchable_content,omitempty"`
	AccessKeys        []string           `json:"access_keys,omitempty"`
}

// DeleteRequest is the wire payload for row deletion.
type DeleteRequest struct {
	QueryType    string `json:"query_type"`
	RelationName string `json:"relation_name"`
	Condition    string `json:"condition"`
}

// LookupQuery holds the optional parameters of a lookup. An empty Fields
// slice asks the server for every column; an empty Condition matches all rows.
type LookupQuery struct {
	Fields    []string
	Condition string
}

// LookupRequest is the wire payload for lookups. Fields is always present
// on the wire, serialised as [] when no projection is requested.
type LookupRequest struct {
	QueryType    string   `json:"query_type"`
	RelationName string   `json:"relation_name"`
	Fields       []string `json:"fields"`
	Condition    string   `json:"condition"`
}

// JoinRelation names one relation participating in a join.
type JoinRelation struct {
	RelationName string   `json:"relation_name"`
	Fields       []string `json:"fields"`
	Defaults     any      `json:"defaults,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	AccessKeys   []string `json:"access_keys,omitempty"`
}

// JoinQuery holds the parameters of a join query.
type JoinQuery struct {
	Type         string // e.g. "Inner", "Outer"
	Relations    []JoinRelation
	ReturnFields []string
	Option       any // optional return clause, e.g. a limit
}

// JoinReturn is the "return" block of a join payload.
type JoinReturn struct {
	Fields []string `json:"fields"`
	Option any      `json:"option,omitempty"`
}

// JoinRequest is the wire payload for joins.
type JoinRequest struct {
	QueryType string         `json:"query_type"`
	JoinType  string         `json:"join_type"`
	Relations []JoinRelation `json:"relations"`
	Return    JoinReturn     `json:"return"`
}

// EditFieldsRequest holds the parameters of a column edit.
type EditFieldsRequest struct {
	Fields     []string
	AddColumns []Column
	Condition  string
	AccessKeys []string
}

// ColumnEditorRequest is the wire payload for column edits. Fields and
// AccessKeys are always present on the wire, serialised as [] when empty.
type ColumnEditorRequest struct {
	QueryType    string   `json:"query_type"`
	RelationName string   `json:"relation_name"`
	Fields       []string `json:"fields"`
	AddColumns   []Column `json:"add_columns"`
	Condition    string   `json:"condition"`
	AccessKeys   []string `json:"access_keys"`
}

// VectorQuery holds the parameters of a vector similarity search.
type VectorQuery struct {
	QueryVector     []float64
	AccessKeys      []string
	SearchRadius    *float64
	NumberOfResults *int
	FilterStatement string
}

// VectorSearchRequest is the wire payload for vector searches.
type VectorSearchRequest struct {
	QueryType       string    `json:"query_type"`
	QueryVector     []float64 `json:"query_vector"`
	AccessKeys      []string  `json:"access_keys,omitempty"`
	SearchRadius    *float64  `json:"search_radius,omitempty"`
	NumberOfResults *int      `json:"number_of_results,omitempty"`
	FilterStatement string    `json:"filter_statement,omitempty"`
}

// RecursionRelation is the relation block of a recursive query. Fields is
// sent empty; the server populates it.
type RecursionRelation struct {
	RelationName string   `json:"relation_name"`
	Fields       []string `json:"fields"`
	Condition    string   `json:"condition"`
	Defaults     any      `json:"defaults"`
	AccessKeys   []string `json:"access_keys"`
}

// RecursionRequest is the wire payload for recursive graph queries.
type RecursionRequest struct {
	QueryType string            `json:"query_type"`
	Relation  RecursionRelation `json:"relation"`
	Source    string            `json:"source"`
	Target    string            `json:"target"`
}
