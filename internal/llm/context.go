package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose tags the context with a label describing why the call is
// made, e.g. "rubric-notes". The logging decorator writes the label to the
// event log so per-facet rubric traffic can be filtered later.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label back off the context. Calls made
// without a label are logged as "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
