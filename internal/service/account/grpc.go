package account

import (
	"context"

	"google.golang.org/grpc"

	"github.com/oggyb/muzz-dating/internal/auth"
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
)

// GRPCServer implements the AccountService API.
// Register and Login are public; every other method acts on the caller.
type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	svc *Service
}

func NewGRPCServer(svc *Service) *GRPCServer {
	return &GRPCServer{svc: svc}
}

var _ pb.AccountServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	sess, err := s.svc.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return authResponse(sess), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	sess, err := s.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return authResponse(sess), nil
}

// GetProfile returns the profile of req.UserId, or of the caller when it
// is zero.
func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.Profile, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}
	target := req.GetUserId()
	if target == 0 {
		target = actor
	}

	p, err := s.svc.GetProfile(ctx, target)
	if err != nil {
		return nil, err
	}
	return pb.FromProfile(p), nil
}

func (s *GRPCServer) UpsertProfile(ctx context.Context, req *pb.Profile) (*pb.Profile, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.svc.UpsertProfile(ctx, actor, ProfileInput{
		Name:        req.Name,
		Age:         int(req.Age),
		Gender:      req.Gender,
		LookingFor:  req.LookingFor,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Bio:         req.Bio,
		Occupation:  req.Occupation,
		Photos:      req.Photos,
		MinAge:      int(req.MinAge),
		MaxAge:      int(req.MaxAge),
		MaxDistance: int(req.MaxDistance),
		Interests:   req.Interests,
	})
	if err != nil {
		return nil, err
	}
	return pb.FromProfile(p), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *pb.DeleteAccountRequest) (*pb.DeleteAccountResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteAccount(ctx, actor); err != nil {
		return nil, err
	}
	return &pb.DeleteAccountResponse{}, nil
}

func authResponse(sess *Session) *pb.AuthResponse {
	return &pb.AuthResponse{
		UserId:      sess.User.ID,
		AccessToken: sess.Token.Value,
		ExpiresAt:   sess.Token.ExpiresAt.Unix(),
	}
}

// Registrar ties the AccountService into the gRPC server.
type Registrar struct {
	svc *Service
}

func NewRegistrar(svc *Service) *Registrar {
	return &Registrar{svc: svc}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterAccountServiceServer(s, NewGRPCServer(r.svc))
}
