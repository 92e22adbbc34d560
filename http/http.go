// Package http implements [limit.Provider] for the Bellande Limit web API.
//
// The request body is the canonical [limit.Payload]. The response body is
// checked to be JSON and returned untouched; its schema belongs to the
// service.
package http

const (
	// DefaultEndpoint is the public Bellande Limit API.
	DefaultEndpoint = "https://bellande-robotics-sensors-research-innovation-center.org/api/Bellande_Limit/bellande_limit"

	requestIDHeader = "X-Request-Id"

	// maxErrorBody bounds how much of an error response is kept in the error.
	maxErrorBody = 4 << 10
)
