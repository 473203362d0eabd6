package form

import "context"

type submissionIDKey struct{}

// WithSubmissionID returns a copy of ctx carrying the submission ID.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionIDKey{}, id)
}

// SubmissionID returns the ID of the submission being handled, if any.
func SubmissionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(submissionIDKey{}).(string)
	return id, ok && id != ""
}
