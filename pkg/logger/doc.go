// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, applies static attributes and, when
// ContextExtractor callbacks are registered, wraps the handler so every
// record logged with a context also carries the attributes those callbacks
// return (for example the run identifier from package runid).
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "userconfig"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	    logger.WithContextExtractors(runid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "users validated", logger.Source(path), logger.Count(n))
//
// Options are applied in order, so WithLevel or WithFormat placed after
// WithEnvironment override the environment defaults.
//
// Helper constructors in attr.go keep attribute keys consistent. Error and
// Fields return an empty Attr for nil input, which slog drops.
package logger
