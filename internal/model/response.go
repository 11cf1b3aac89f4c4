package model

// Response is the envelope every endpoint answers with.
//
// Status is "success" for 2xx, "fail" for client-caused failures
// (validation, bad credentials, missing resources), and "error" for
// unexpected server-side failures, where Error carries the detail.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// NewSuccess builds a success envelope.
func NewSuccess(message string, data interface{}) *Response {
	return &Response{Status: StatusSuccess, Message: message, Data: data}
}

// NewFail builds a fail envelope for client-caused failures.
func NewFail(message string) *Response {
	return &Response{Status: StatusFail, Message: message}
}

// NewError builds an error envelope, echoing the underlying error
// detail to the caller.
func NewError(message string, err error) *Response {
	resp := &Response{Status: StatusError, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
