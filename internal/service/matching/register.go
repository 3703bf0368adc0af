package matching

import (
	"google.golang.org/grpc"

	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
)

// Registrar ties the MatchService into the gRPC server.
type Registrar struct {
	engine *Engine
}

// NewRegistrar creates a new Registrar for the MatchService.
func NewRegistrar(engine *Engine) *Registrar {
	return &Registrar{engine: engine}
}

// Register attaches the MatchService implementation to the gRPC server.
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterMatchServiceServer(s, NewGRPCServer(r.engine))
}
