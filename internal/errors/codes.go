package errors

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies a spellbook failure for transports
type Code string

// Error codes raised by the spellbook
const (
	CodeOK Code = "OK"
	// CodeCanceled means the caller gave up on a load or import
	CodeCanceled Code = "CANCELED"
	// CodeDeadlineExceeded means a load or import ran out of time
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	// CodeUnimplemented is returned by servers missing an RPC
	CodeUnimplemented Code = "UNIMPLEMENTED"
	CodeInternal      Code = "INTERNAL"
	// CodeUnavailable means a dataset source or the SRD API could not be reached
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeDataLoss means a dataset was read but its content is unusable
	CodeDataLoss Code = "DATA_LOSS"
)

type codeMapping struct {
	http int
	grpc codes.Code
}

var codeMappings = map[Code]codeMapping{
	CodeOK:               {http.StatusOK, codes.OK},
	CodeCanceled:         {http.StatusRequestTimeout, codes.Canceled},
	CodeDeadlineExceeded: {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	CodeInvalidArgument:  {http.StatusBadRequest, codes.InvalidArgument},
	CodeNotFound:         {http.StatusNotFound, codes.NotFound},
	CodeUnimplemented:    {http.StatusNotImplemented, codes.Unimplemented},
	CodeInternal:         {http.StatusInternalServerError, codes.Internal},
	CodeUnavailable:      {http.StatusServiceUnavailable, codes.Unavailable},
	CodeDataLoss:         {http.StatusInternalServerError, codes.DataLoss},
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	if m, ok := codeMappings[c]; ok {
		return m.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if m, ok := codeMappings[c]; ok {
		return m.grpc
	}
	return codes.Unknown
}

// grpcCodeToCode converts a gRPC code to our error code. Codes the spellbook
// never raises collapse to internal.
func grpcCodeToCode(grpcCode codes.Code) Code {
	for code, m := range codeMappings {
		if m.grpc == grpcCode {
			return code
		}
	}
	return CodeInternal
}

// ContextCode tells a deadline apart from a cancellation
func ContextCode(err error) Code {
	if errors.Is(err, context.DeadlineExceeded) {
		return CodeDeadlineExceeded
	}
	return CodeCanceled
}
