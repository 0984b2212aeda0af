package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCodeKey    = "code"
	detailMessageKey = "message"
	detailMetaKey    = "meta"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	// Check if it's our custom error
	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		// Metadata travels as a Struct detail
		if len(customErr.Meta) > 0 {
			if details := toDetails(customErr); details != nil {
				if withDetails, err := st.WithDetails(details); err == nil {
					st = withDetails
				}
			}
		}

		return st.Err()
	}

	// Default to internal error
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	// Map gRPC code to our code
	code := grpcCodeToCode(st.Code())

	// Create base error
	customErr := &Error{
		Code:    code,
		Message: st.Message(),
	}

	// Extract details if present
	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = fromDetails(details)
			break
		}
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	// Check if it's already a gRPC status
	if st, ok := status.FromError(err); ok {
		return st
	}

	// Check if it's our custom error
	var customErr *Error
	if As(err, &customErr) {
		return status.New(customErr.Code.GRPCCode(), customErr.Message)
	}

	// Default to internal error
	return status.New(codes.Internal, err.Error())
}

// toDetails packs the error into a Struct; meta values that protobuf cannot
// represent directly are stringified
func toDetails(e *Error) *structpb.Struct {
	meta := make(map[string]*structpb.Value, len(e.Meta))
	for k, v := range e.Meta {
		value, err := structpb.NewValue(v)
		if err != nil {
			value = structpb.NewStringValue(fmt.Sprint(v))
		}
		meta[k] = value
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			detailCodeKey:    structpb.NewStringValue(string(e.Code)),
			detailMessageKey: structpb.NewStringValue(e.Message),
			detailMetaKey:    structpb.NewStructValue(&structpb.Struct{Fields: meta}),
		},
	}
}

// fromDetails extracts the meta map from a Struct produced by toDetails
func fromDetails(details *structpb.Struct) map[string]any {
	metaValue, ok := details.GetFields()[detailMetaKey]
	if !ok || metaValue.GetStructValue() == nil {
		return nil
	}
	return metaValue.GetStructValue().AsMap()
}
