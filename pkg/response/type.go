package response

// Resp is the JSON envelope every endpoint returns. ErrorCode is 0 on
// success; error responses mirror the HTTP status code, and Data may carry
// a payload even on errors (e.g. conflicts with alternative slots).
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
