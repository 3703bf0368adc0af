package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/muzz-dating/internal/auth"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
)

// RequestIDKey is the metadata key (gRPC) and header (HTTP) carrying the
// request id.
const RequestIDKey = "x-request-id"

// loggingInterceptor assigns a request id, stores a request-scoped logger
// in the context and logs the outcome of every call.
func loggingInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		requestID := firstMetadata(ctx, RequestIDKey)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, requestID))

		log := base.With("request_id", requestID, "method", info.FullMethod)
		ctx = logger.WithContext(ctx, log)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		attrs := []any{"code", code.String(), "duration_ms", time.Since(start).Milliseconds()}
		switch code {
		case codes.OK:
			log.Info("grpc request", attrs...)
		case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
			log.Error("grpc request failed", append(attrs, "err", err)...)
		default:
			log.Warn("grpc request rejected", append(attrs, "reason", svcErr.ReasonFromStatus(err))...)
		}
		return resp, err
	}
}

// authInterceptor resolves the bearer token of every non-public method
// into the acting user id.
func authInterceptor(issuer *auth.Issuer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if isPublic(info.FullMethod) {
			return handler(ctx, req)
		}

		token, err := auth.BearerToken(firstMetadata(ctx, "authorization"))
		if err != nil {
			return nil, svcErr.Map(err)
		}
		userID, err := issuer.Parse(token)
		if err != nil {
			return nil, svcErr.Map(err)
		}

		ctx = auth.WithActor(ctx, userID)
		ctx = logger.WithContext(ctx, logger.FromContext(ctx, nil).With("actor", userID))
		return handler(ctx, req)
	}
}

// errorInterceptor converts domain errors into gRPC statuses and turns
// panics into Internal errors.
func errorInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx, nil).Error("panic in handler", "panic", r, "stack", string(debug.Stack()))
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()

	resp, err = handler(ctx, req)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return resp, nil
}

// publicMethods skip authentication.
var publicMethods = map[string]bool{
	pb.AccountService_Register_FullMethodName: true,
	pb.AccountService_Login_FullMethodName:    true,
}

func isPublic(method string) bool {
	return publicMethods[method] ||
		strings.HasPrefix(method, "/grpc.health.") ||
		strings.HasPrefix(method, "/grpc.reflection.")
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}
