package discovery

import (
	"context"

	"google.golang.org/grpc"

	"github.com/oggyb/muzz-dating/internal/auth"
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
)

// GRPCServer implements the DiscoveryService API.
type GRPCServer struct {
	pb.UnimplementedDiscoveryServiceServer
	filter *Filter
}

func NewGRPCServer(filter *Filter) *GRPCServer {
	return &GRPCServer{filter: filter}
}

var _ pb.DiscoveryServiceServer = (*GRPCServer)(nil)

// Discover returns a fresh batch of candidate profiles for the caller.
func (s *GRPCServer) Discover(ctx context.Context, _ *pb.DiscoverRequest) (*pb.DiscoverResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := s.filter.Discover(ctx, actor)
	if err != nil {
		return nil, err
	}

	resp := &pb.DiscoverResponse{Candidates: make([]*pb.Profile, 0, len(profiles))}
	for i := range profiles {
		resp.Candidates = append(resp.Candidates, pb.FromProfile(&profiles[i]))
	}
	return resp, nil
}

// Registrar ties the DiscoveryService into the gRPC server.
type Registrar struct {
	filter *Filter
}

func NewRegistrar(filter *Filter) *Registrar {
	return &Registrar{filter: filter}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterDiscoveryServiceServer(s, NewGRPCServer(r.filter))
}
