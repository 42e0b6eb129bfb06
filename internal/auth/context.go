package auth

import (
	"context"

	"github.com/soyticz12/HRIS/internal/model"
)

type contextKey string

const sessionKey contextKey = "hris.session"

func WithSession(ctx context.Context, sess model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func SessionFromContext(ctx context.Context) (model.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(model.Session)
	return sess, ok
}
