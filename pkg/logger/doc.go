// Package logger is a thin functional-options factory around log/slog plus a
// handful of attribute helpers that keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "addressbook"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Warn("phone number rejected",
//	    logger.Component("addressbook"),
//	    logger.Field(kind),
//	    logger.Value(raw),
//	    logger.Error(err),
//	)
//
// New defaults to JSON at INFO level on stdout. ParseLevel and ParseFormat
// turn configuration strings into options values.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally; slog drops empty attributes.
package logger
