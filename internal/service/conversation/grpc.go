package conversation

import (
	"context"

	"google.golang.org/grpc"

	"github.com/oggyb/muzz-dating/internal/auth"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
)

// GRPCServer implements the ChatService API on top of the Gate.
type GRPCServer struct {
	pb.UnimplementedChatServiceServer
	gate *Gate
}

// NewGRPCServer creates the ChatService implementation.
func NewGRPCServer(gate *Gate) *GRPCServer {
	return &GRPCServer{gate: gate}
}

var _ pb.ChatServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.Message, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if req.ReceiverUserId == 0 {
		return nil, svcErr.Invalid("receiver_user_id is required")
	}

	msg, err := s.gate.SendMessage(ctx, actor, req.ReceiverUserId, req.Content)
	if err != nil {
		return nil, err
	}
	return pb.FromMessage(msg), nil
}

func (s *GRPCServer) OpenConversation(ctx context.Context, req *pb.OpenConversationRequest) (*pb.OpenConversationResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	thread, err := s.gate.OpenConversation(ctx, actor, req.GetCounterpartUserId())
	if err != nil {
		return nil, err
	}
	return &pb.OpenConversationResponse{Messages: pb.FromMessages(thread)}, nil
}

func (s *GRPCServer) UnreadCount(ctx context.Context, _ *pb.UnreadCountRequest) (*pb.UnreadCountResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.gate.UnreadCount(ctx, actor)
	if err != nil {
		return nil, err
	}
	return &pb.UnreadCountResponse{Count: uint64(n)}, nil
}

func (s *GRPCServer) ListConversations(ctx context.Context, _ *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.gate.ListConversations(ctx, actor)
	if err != nil {
		return nil, err
	}

	resp := &pb.ListConversationsResponse{Conversations: make([]*pb.Conversation, 0, len(rows))}
	for _, r := range rows {
		resp.Conversations = append(resp.Conversations, &pb.Conversation{
			CounterpartUserId: r.CounterpartID,
			Profile:           pb.FromProfile(r.Profile),
			LastMessage:       pb.FromMessage(r.LastMessage),
			UnreadCount:       uint64(r.UnreadCount),
		})
	}
	return resp, nil
}

// Registrar ties the ChatService into the gRPC server.
type Registrar struct {
	gate *Gate
}

// NewRegistrar creates a new Registrar for the ChatService.
func NewRegistrar(gate *Gate) *Registrar {
	return &Registrar{gate: gate}
}

// Register attaches the ChatService implementation to the gRPC server.
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterChatServiceServer(s, NewGRPCServer(r.gate))
}
