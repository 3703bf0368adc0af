package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oggyb/muzz-dating/internal/auth"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
	"github.com/oggyb/muzz-dating/internal/server"
	"github.com/oggyb/muzz-dating/internal/service/account"
	"github.com/oggyb/muzz-dating/internal/service/conversation"
	"github.com/oggyb/muzz-dating/internal/service/discovery"
	"github.com/oggyb/muzz-dating/internal/service/matching"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

const bufSize = 1024 * 1024

type clients struct {
	conn      *grpc.ClientConn
	account   pb.AccountServiceClient
	match     pb.MatchServiceClient
	discovery pb.DiscoveryServiceClient
	chat      pb.ChatServiceClient
}

func startServer(t *testing.T) *clients {
	t.Helper()

	env := testutil.NewEnv(t)
	issuer := auth.NewIssuer(env.App.Config)
	engine := matching.NewEngine(env.App)

	srv := server.NewGRPCServer(env.App.Logger, issuer,
		account.NewRegistrar(account.NewService(env.App, issuer)),
		matching.NewRegistrar(engine),
		discovery.NewRegistrar(discovery.NewFilter(env.App, engine)),
		conversation.NewRegistrar(conversation.NewGate(env.App)),
	)

	lis := bufconn.Listen(bufSize)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &clients{
		conn:      conn,
		account:   pb.NewAccountServiceClient(conn),
		match:     pb.NewMatchServiceClient(conn),
		discovery: pb.NewDiscoveryServiceClient(conn),
		chat:      pb.NewChatServiceClient(conn),
	}
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func requireCode(t *testing.T, err error, code codes.Code, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err), err.Error())
	if reason != "" {
		assert.Equal(t, reason, svcErr.ReasonFromStatus(err))
	}
}

func (c *clients) signup(t *testing.T, ctx context.Context, email, name, gender string) (uint64, context.Context) {
	t.Helper()
	resp, err := c.account.Register(ctx, &pb.RegisterRequest{Email: email, Password: "password123"})
	require.NoError(t, err)
	authed := withToken(ctx, resp.AccessToken)

	_, err = c.account.UpsertProfile(authed, &pb.Profile{Name: name, Age: 28, Gender: gender})
	require.NoError(t, err)
	return resp.UserId, authed
}

func TestGRPC_EndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := startServer(t)

	aliceID, alice := c.signup(t, ctx, "alice@test.com", "Alice", "female")
	bobID, bob := c.signup(t, ctx, "bob@test.com", "Bob", "male")

	disc, err := c.discovery.Discover(alice, &pb.DiscoverRequest{})
	require.NoError(t, err)
	require.Len(t, disc.Candidates, 1)
	assert.Equal(t, bobID, disc.Candidates[0].UserId)

	_, err = c.chat.SendMessage(alice, &pb.SendMessageRequest{ReceiverUserId: bobID, Content: "hi"})
	requireCode(t, err, codes.PermissionDenied, "NOT_MATCHED")

	_, err = c.match.Like(alice, &pb.LikeRequest{TargetUserId: aliceID})
	requireCode(t, err, codes.InvalidArgument, "SELF_LIKE")

	like, err := c.match.Like(alice, &pb.LikeRequest{TargetUserId: bobID})
	require.NoError(t, err)
	assert.False(t, like.IsMatch)

	_, err = c.match.Like(alice, &pb.LikeRequest{TargetUserId: bobID})
	requireCode(t, err, codes.AlreadyExists, "DUPLICATE_LIKE")

	count, err := c.match.CountLikedYou(bob, &pb.CountLikedYouRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count.GetCount())

	likers, err := c.match.ListLikedYou(bob, &pb.ListLikedYouRequest{})
	require.NoError(t, err)
	require.Len(t, likers.Likers, 1)
	assert.Equal(t, aliceID, likers.Likers[0].ActorId)

	like, err = c.match.Like(bob, &pb.LikeRequest{TargetUserId: aliceID})
	require.NoError(t, err)
	assert.True(t, like.IsMatch)

	matches, err := c.match.ListMatches(alice, &pb.ListMatchesRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, matches.Matches, 1)
	assert.Equal(t, bobID, matches.Matches[0].UserId)
	assert.NotZero(t, matches.Matches[0].MatchedAt)

	sent, err := c.chat.SendMessage(alice, &pb.SendMessageRequest{ReceiverUserId: bobID, Content: "hello <i>bob</i>"})
	require.NoError(t, err)
	assert.Equal(t, "hello bob", sent.Content)

	unread, err := c.chat.UnreadCount(bob, &pb.UnreadCountRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), unread.GetCount())

	thread, err := c.chat.OpenConversation(bob, &pb.OpenConversationRequest{CounterpartUserId: aliceID})
	require.NoError(t, err)
	require.Len(t, thread.Messages, 1)
	assert.True(t, thread.Messages[0].IsRead)
	assert.NotNil(t, thread.Messages[0].ReadAt)

	unread, err = c.chat.UnreadCount(bob, &pb.UnreadCountRequest{})
	require.NoError(t, err)
	assert.Zero(t, unread.GetCount())

	convs, err := c.chat.ListConversations(alice, &pb.ListConversationsRequest{})
	require.NoError(t, err)
	require.Len(t, convs.Conversations, 1)
	assert.Equal(t, "hello bob", convs.Conversations[0].LastMessage.Content)
}

func TestGRPC_Authentication(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := startServer(t)

	_, err := c.match.CountLikedYou(ctx, &pb.CountLikedYouRequest{})
	requireCode(t, err, codes.Unauthenticated, "UNAUTHENTICATED")

	_, err = c.match.CountLikedYou(withToken(ctx, "bogus"), &pb.CountLikedYouRequest{})
	requireCode(t, err, codes.Unauthenticated, "UNAUTHENTICATED")

	_, err = c.account.Login(ctx, &pb.LoginRequest{Email: "nobody@test.com", Password: "password123"})
	requireCode(t, err, codes.Unauthenticated, "INVALID_CREDENTIALS")

	_, err = c.account.Register(ctx, &pb.RegisterRequest{Email: "bad", Password: "password123"})
	requireCode(t, err, codes.InvalidArgument, "INVALID_ARGUMENT")

	// health stays reachable without a token
	hc, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.GetStatus())
}

func TestGRPC_RequestIDHeader(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := startServer(t)

	var header metadata.MD
	ctx = metadata.AppendToOutgoingContext(ctx, server.RequestIDKey, "req-123")
	_, err := c.account.Register(ctx, &pb.RegisterRequest{Email: "a@test.com", Password: "password123"}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-123"}, header.Get(server.RequestIDKey))
}

func TestGRPC_ReflectionListsServices(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := startServer(t)

	stream, err := reflectionpb.NewServerReflectionClient(c.conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{ListServices: "*"},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Subset(t, names, []string{"dating.AccountService", "dating.MatchService", "dating.DiscoveryService", "dating.ChatService"})

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: "dating.ChatService"},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetFileDescriptorResponse().GetFileDescriptorProto())
}
