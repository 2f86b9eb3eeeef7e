package recommend

import (
	"encoding/json"
	"fmt"
)

// ErrServer indicates the server answered with a non-2xx status and a
// JSON body.
type ErrServer struct {
	Status  int
	Message string
}

func (e *ErrServer) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Status, e.Message)
}

// ErrTransport indicates the request never produced a response.
type ErrTransport struct {
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("recommend transport: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates a response body that could not be parsed
// or did not match the expected shape.
type ErrInvalidResponse struct {
	Status int
	Body   json.RawMessage
	Err    error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid recommend response (status %d): %v", e.Status, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
