package nexusdb

import "github.com/nexusdb/nexusdb-go/internal/types"

// Public type aliases so SDK consumers can import only the nexusdb package.
type (
	// Schema
	Column            = types.Column
	EditFieldsRequest = types.EditFieldsRequest

	// Mutations
	Mutation          = types.Mutation
	SearchableContent = types.SearchableContent

	// Queries
	LookupQuery  = types.LookupQuery
	JoinQuery    = types.JoinQuery
	JoinRelation = types.JoinRelation
	VectorQuery  = types.VectorQuery

	// Results
	Result   = types.Result
	Value    = types.Value
	CellType = types.CellType

	// Configuration
	RetryPolicy = types.RetryPolicy
)

// Cell type names reported by Value.Type.
const (
	CellInt     = types.CellInt
	CellFloat   = types.CellFloat
	CellStr     = types.CellStr
	CellBool    = types.CellBool
	CellUuid    = types.CellUuid
	CellJson    = types.CellJson
	CellList    = types.CellList
	CellUnknown = types.CellUnknown
)
