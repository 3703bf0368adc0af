package matching

import (
	"context"

	"github.com/oggyb/muzz-dating/internal/auth"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
)

// GRPCServer implements the MatchService API on top of the Engine.
// The acting user comes from the authenticated request context.
type GRPCServer struct {
	pb.UnimplementedMatchServiceServer
	engine *Engine
}

// NewGRPCServer creates the MatchService implementation.
func NewGRPCServer(engine *Engine) *GRPCServer {
	return &GRPCServer{engine: engine}
}

var _ pb.MatchServiceServer = (*GRPCServer)(nil)

// Like registers interest in the target user.
//
// Example:
//
//	srv.Like(ctx, &pb.LikeRequest{TargetUserId: 42}) // {success: true, is_match: false}
func (s *GRPCServer) Like(ctx context.Context, req *pb.LikeRequest) (*pb.LikeResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetTargetUserId() == 0 {
		return nil, svcErr.Invalid("target_user_id is required")
	}

	res, err := s.engine.RegisterLike(ctx, actor, req.GetTargetUserId())
	if err != nil {
		return nil, err
	}
	return &pb.LikeResponse{Success: true, IsMatch: res.IsNewMatch}, nil
}

// Pass hides the target user from the caller's discovery.
func (s *GRPCServer) Pass(ctx context.Context, req *pb.PassRequest) (*pb.PassResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetTargetUserId() == 0 {
		return nil, svcErr.Invalid("target_user_id is required")
	}

	if err := s.engine.Pass(ctx, actor, req.GetTargetUserId()); err != nil {
		return nil, err
	}
	return &pb.PassResponse{Success: true}, nil
}

// ListMatches returns the caller's confirmed matches, newest first.
func (s *GRPCServer) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	rows, next, err := s.engine.ListMatches(ctx, actor, req.PaginationToken, int(req.GetLimit()))
	if err != nil {
		return nil, err
	}

	resp := &pb.ListMatchesResponse{Matches: make([]*pb.Match, 0, len(rows)), NextPaginationToken: next}
	for _, r := range rows {
		m := &pb.Match{
			MatchId: r.Match.ID,
			UserId:  r.CounterpartID,
			Profile: pb.FromProfile(r.Profile),
		}
		if r.Match.MatchedAt != nil {
			m.MatchedAt = r.Match.MatchedAt.UnixMilli()
		}
		resp.Matches = append(resp.Matches, m)
	}
	return resp, nil
}

// ListLikedYou returns users who liked the caller and are still waiting for
// an answer.
func (s *GRPCServer) ListLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	likes, next, err := s.engine.ListLikedYou(ctx, actor, req.PaginationToken, int(req.GetLimit()))
	if err != nil {
		return nil, err
	}

	resp := &pb.ListLikedYouResponse{Likers: make([]*pb.Liker, 0, len(likes)), NextPaginationToken: next}
	for _, l := range likes {
		resp.Likers = append(resp.Likers, &pb.Liker{
			ActorId:       l.LikerID,
			UnixTimestamp: uint64(l.CreatedAt.UnixMilli()),
		})
	}

	logger.FromContext(ctx, s.engine.appCtx.Logger).Debug("ListLikedYou result", "liker_count", len(resp.Likers), "has_next", next != nil)
	return resp, nil
}

// CountLikedYou returns the number of unanswered likes the caller received.
func (s *GRPCServer) CountLikedYou(ctx context.Context, _ *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	actor, err := auth.ActorFrom(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.engine.CountLikedYou(ctx, actor)
	if err != nil {
		return nil, err
	}
	return &pb.CountLikedYouResponse{Count: uint64(n)}, nil
}
