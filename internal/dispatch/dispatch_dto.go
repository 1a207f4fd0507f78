package dispatch

type Status string

const (
	StatusSuccess Status = "success"
	StatusDenied  Status = "denied"
	StatusError   Status = "error"
)

// ActionRequest is one dispatcher invocation: an action name plus the
// parameter bag extracted by the conversational layer. Every invocation is
// self-contained; there is no session state to fall back on.
type ActionRequest struct {
	Action     string            `json:"action" binding:"required"`
	Parameters map[string]string `json:"parameters"`
}

// Result is the uniform response envelope. Payload is set for success and
// denied outcomes; ErrorCode and Message for errors. Denied carries
// protocol-level success semantics so the rendering layer can phrase it as a
// refusal rather than a fault.
type Result struct {
	Status    Status `json:"status"`
	Action    string `json:"action"`
	Payload   any    `json:"payload,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Message   string `json:"message,omitempty"`
}
