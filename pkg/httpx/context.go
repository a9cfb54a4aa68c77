package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject holds the verified access-token subject (the user's email).
	CtxKeySubject ctxKey = "subject"
)

// SubjectFromCtx returns the verified token subject, if any.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeySubject).(string)
	return v, ok && v != ""
}

func subjectFromCtx(ctx context.Context) string {
	s, _ := SubjectFromCtx(ctx)
	return s
}
