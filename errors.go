package nexusdb

import (
	"errors"

	nxerrors "github.com/nexusdb/nexusdb-go/internal/errors"
	"github.com/nexusdb/nexusdb-go/internal/types"
)

// ErrMissingAPIKey is returned by New when no API key is supplied.
var ErrMissingAPIKey = errors.New("api key is required")

// ErrEmptyResponse is returned when the server replies with an empty body.
var ErrEmptyResponse = types.ErrEmptyResponse

// StatusError is the error returned for non-success HTTP statuses and
// network-level failures. It carries the status code, the server's error
// payload and the query type that failed.
type StatusError = nxerrors.StatusError

// AsStatusError unwraps err into a *StatusError if one is in its chain.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}
