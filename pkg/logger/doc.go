// Package logger builds *slog.Logger values with functional options and a
// handler decorator that copies request-scoped values (such as a form
// submission ID) from context.Context into every record.
//
// Attribute helpers in attr.go keep key names consistent between the form
// controller, the HTTP adapter and the demo server.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formdemo"),
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        id, ok := form.SubmissionID(ctx)
//	        return logger.SubmissionID(id), ok
//	    }),
//	)
//	log.InfoContext(ctx, "form accepted", logger.Form("signup"))
package logger
