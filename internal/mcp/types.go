package mcp

// Request is one action invocation. ID is optional; the router assigns one
// when it is empty so every response can be correlated.
type Request struct {
	ID     string                 `json:"id,omitempty"`
	Action string                 `json:"action"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// Response carries either a Result or an Error, never both
type Response struct {
	ID     string      `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  *Error      `json:"error,omitempty"`
}

// Error is a protocol-level failure: a request the router could not route.
// Action-level failures are reported inside the Result instead.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope is the result payload for an action that was routed but
// failed while executing
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Action  string `json:"action"`
	Success bool   `json:"success"`
}
