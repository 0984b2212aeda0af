// Package errors provides structured errors for the grimoire-api project.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. Codes map onto both HTTP statuses and gRPC codes so the
// same value can be returned by the gin handlers and the gRPC handlers.
//
// # Basic Usage
//
//	err := errors.NotFoundf("spell %q not found", name)
//	err := errors.InvalidArgument("term is required")
//
// Adding metadata:
//
//	err := errors.Unavailable("dataset unreadable").
//	    WithMeta("path", path)
//
// Wrapping keeps the code of an existing *Error:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to reload spellbook")
//	}
//
// # Taxonomy
//
//   - Malformed raw spell fields never surface as errors; the normalizer
//     substitutes sentinel values instead.
//   - A lookup with no match returns NotFound. Search and listing return an
//     empty result, not an error.
//   - An unreadable dataset is Unavailable, an undecodable one is DataLoss.
//   - Bad request input is InvalidArgument.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("dataset.path", cfg.Dataset.Path, vb)
//	errors.ValidateRange("server.grpc_port", cfg.Server.GRPCPort, 1, 65535, vb)
//	return vb.Build()
package errors
