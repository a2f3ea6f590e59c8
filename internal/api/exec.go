package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	nxerrors "github.com/nexusdb/nexusdb-go/internal/errors"
	"github.com/nexusdb/nexusdb-go/internal/types"
)

// Do posts one query payload to the service's query endpoint and returns the
// decoded body. Every operation goes through here: marshal, POST, status
// check, empty-body check, JSON validity check. When retry is non-nil,
// recoverable failures are retried with exponential backoff; irrecoverable
// ones (most 4xx) fail immediately.
func Do(ctx context.Context, httpClient *http.Client, baseURL, queryType string, payload any, retry *types.RetryPolicy) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("query_type", queryType).RawJSON("payload", body).Msg("sending query")

	if retry == nil {
		out, err := attempt(ctx, httpClient, baseURL, queryType, body)
		observe(queryType, err)
		return out, err
	}

	policy := retry.WithDefaults()
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = policy.InitialInterval
	exp.MaxInterval = policy.MaxInterval
	exp.MaxElapsedTime = policy.MaxElapsedTime

	var out json.RawMessage
	err = backoff.Retry(func() error {
		var attemptErr error
		out, attemptErr = attempt(ctx, httpClient, baseURL, queryType, body)
		observe(queryType, attemptErr)
		if attemptErr != nil && nxerrors.IsIrrecoverable(attemptErr) {
			return backoff.Permanent(attemptErr)
		}
		return attemptErr
	}, backoff.WithContext(backoff.WithMaxRetries(exp, policy.MaxAttempts-1), ctx))
	return out, err
}

func attempt(ctx context.Context, httpClient *http.Client, baseURL, queryType string, body []byte) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, nxerrors.NewNetworkError(queryType, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nxerrors.NewNetworkError(queryType, err)
	}
	log.Debug().Str("query_type", queryType).Int("status_code", resp.StatusCode).Msg("query response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nxerrors.NewHTTPError(resp.StatusCode, string(data), queryType)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, types.ErrEmptyResponse
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: response could not be decoded as JSON: %q", queryType, data)
	}
	return json.RawMessage(data), nil
}

func observe(queryType string, err error) {
	queriesTotal.WithLabelValues(queryType).Inc()
	if err != nil {
		queryFailuresTotal.WithLabelValues(queryType).Inc()
	}
}
