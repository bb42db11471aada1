// Package logger builds *slog.Logger values for hesper binaries and libraries.
//
// New creates a logger from functional options: output format, level, static
// attributes and context extractors that copy request-scoped values (such as a
// request id) onto every record. Discard returns a logger that drops everything;
// libraries use it when the caller supplies none.
//
// Attribute helpers (Error, Field, Form, Class, Result, ...) keep key names
// consistent across packages:
//
//	log := logger.New(logger.WithEnvironment("production", "hesperd"))
//	log.DebugContext(ctx, "field rejected", logger.Form("signup"), logger.Field("birthday"), logger.Error(reason))
package logger
