// Package errors provides structured domain errors for snippetpad.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeSnippetDecode covers every way a snippet value can fail to become
	// text. The resolver absorbs it, so it never reaches a response.
	CodeSnippetDecode Code = "SNIPPET_DECODE"

	// CodeInvalidConfig marks startup configuration that cannot be served.
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// CodeRenderFailed marks a page that could not be written to the client.
	CodeRenderFailed Code = "RENDER_FAILED"
)

// HTTPStatus returns the HTTP status a code maps to when it reaches a
// response boundary. Only server faults get that far.
func (c Code) HTTPStatus() int {
	return http.StatusInternalServerError
}
