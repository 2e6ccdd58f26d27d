// Package httpapi exposes the cipher registry over HTTP. The API is
// stateless: every request carries its full inputs and the response
// carries the full result.
package httpapi

// TransformRequest is the request body for POST /api/v1/transform.
type TransformRequest struct {
	Cipher string `json:"cipher" binding:"required"`
	Key    string `json:"key"`
	Text   string `json:"text" binding:"required"`
	Mode   string `json:"mode"`
	Trace  bool   `json:"trace"`
}

// TransformResponse is the success body for a transform.
type TransformResponse struct {
	Cipher string   `json:"cipher"`
	Mode   string   `json:"mode"`
	Output string   `json:"output"`
	Steps  []string `json:"steps,omitempty"`
}

// AlgorithmInfo describes one registry entry.
type AlgorithmInfo struct {
	Name           string `json:"name"`
	Family         string `json:"family"`
	KeyKind        string `json:"key_kind"`
	Description    string `json:"description"`
	SelfReciprocal bool   `json:"self_reciprocal,omitempty"`
}

// ErrorResponse is the body of every non-2xx response. Code carries
// the engine error code (EMPTY_KEY, INVALID_KEY, NO_INVERSE,
// TEXT_TOO_LONG) when the failure came from a cipher.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
