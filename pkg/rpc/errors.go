package rpc

import (
	"fmt"
)

// TransportError means the request never produced a response body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "error retrieving RPC response: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError means the registry answered with a document this client
// cannot interpret.
type ProtocolError struct {
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// ServerError is an error the registry reported explicitly.
type ServerError struct {
	Code, Message, Data string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("RPC server error %s: %s (%s)", e.Code, e.Message, e.Data)
}
