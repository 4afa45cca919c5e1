package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "medisync-api/api/medisync/v1"
	"medisync-api/internal/auth"
	"medisync-api/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

// skip auth for these
var open = map[string]bool{
	pb.MediSync_RegisterPatient_FullMethodName:    true,
	pb.MediSync_RegisterDoctor_FullMethodName:     true,
	pb.MediSync_RegisterPharmacist_FullMethodName: true,
	pb.MediSync_Login_FullMethodName:              true,
}

type SessionGetter interface {
	Get(ctx context.Context, id string) (*session.Session, error)
}

// Auth resolves "authorization: Bearer <jwt>" to a live session. A valid
// token whose session was deleted or expired is rejected like a bad token.
func Auth(secret string, sessions SessionGetter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		raw := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			raw = strings.TrimPrefix(vals[0], "Bearer ")
		}
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}

		sess, err := sessions.Get(ctx, claims.SessionID)
		if errors.Is(err, session.ErrNotFound) {
			return nil, status.Error(codes.Unauthenticated, "session expired")
		}
		if err != nil {
			return nil, status.Error(codes.Unavailable, "session store unavailable")
		}
		if uid, err := claims.UserID(); err != nil || uid != sess.UserID {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}

		return next(WithSession(ctx, sess), req)
	}
}

func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func SessionFrom(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}
