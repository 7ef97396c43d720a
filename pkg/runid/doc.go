// Package runid tags every log record of one command invocation with the
// same identifier, so the records of a single validation run can be grouped
// after the fact.
//
//	ctx := runid.WithContext(context.Background(), runid.New())
//	log := logger.New(logger.WithContextExtractors(runid.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // ... run_id=3f2c...
package runid
