// Package handler exposes the dating API over HTTP/JSON with gin. Handlers
// bind and validate the request, then call the same service
// implementations the gRPC server uses.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
	"github.com/oggyb/muzz-dating/internal/service/account"
	"github.com/oggyb/muzz-dating/internal/service/conversation"
	"github.com/oggyb/muzz-dating/internal/service/discovery"
	"github.com/oggyb/muzz-dating/internal/service/matching"
)

// Services are the API implementations the handlers delegate to.
type Services struct {
	Account   *account.GRPCServer
	Match     *matching.GRPCServer
	Discovery *discovery.GRPCServer
	Chat      *conversation.GRPCServer
}

type Handler struct {
	svc Services
}

func New(svc Services) *Handler {
	return &Handler{svc: svc}
}

// --- accounts ---

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Account.Register(c.Request.Context(), req.proto())
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Account.Login(c.Request.Context(), req.proto())
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

// GetMyProfile handles GET /api/profile.
func (h *Handler) GetMyProfile(c *gin.Context) {
	h.getProfile(c, 0)
}

// GetUserProfile handles GET /api/users/:user_id.
func (h *Handler) GetUserProfile(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	h.getProfile(c, id)
}

func (h *Handler) getProfile(c *gin.Context, userID uint64) {
	resp, err := h.svc.Account.GetProfile(c.Request.Context(), &pb.GetProfileRequest{UserId: userID})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var req profileRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Account.UpsertProfile(c.Request.Context(), req.proto())
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if _, err := h.svc.Account.DeleteAccount(c.Request.Context(), &pb.DeleteAccountRequest{}); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- discovery and matching ---

func (h *Handler) Discover(c *gin.Context) {
	resp, err := h.svc.Discovery.Discover(c.Request.Context(), &pb.DiscoverRequest{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) Like(c *gin.Context) {
	target, ok := userIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Match.Like(c.Request.Context(), &pb.LikeRequest{TargetUserId: target})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) Pass(c *gin.Context) {
	target, ok := userIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Match.Pass(c.Request.Context(), &pb.PassRequest{TargetUserId: target})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) ListMatches(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Match.ListMatches(c.Request.Context(), &pb.ListMatchesRequest{PaginationToken: q.PaginationToken, Limit: q.Limit})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) ListLikedYou(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Match.ListLikedYou(c.Request.Context(), &pb.ListLikedYouRequest{PaginationToken: q.PaginationToken, Limit: q.Limit})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) CountLikedYou(c *gin.Context) {
	resp, err := h.svc.Match.CountLikedYou(c.Request.Context(), &pb.CountLikedYouRequest{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": resp.GetCount()})
}

// --- chat ---

func (h *Handler) SendMessage(c *gin.Context) {
	receiver, ok := userIDParam(c)
	if !ok {
		return
	}
	var body messageRequest
	if !bindJSON(c, &body) {
		return
	}
	resp, err := h.svc.Chat.SendMessage(c.Request.Context(), &pb.SendMessageRequest{
		ReceiverUserId: receiver,
		Content:        body.Content,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusCreated, resp)
}

func (h *Handler) OpenConversation(c *gin.Context) {
	counterpart, ok := userIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Chat.OpenConversation(c.Request.Context(), &pb.OpenConversationRequest{CounterpartUserId: counterpart})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) ListConversations(c *gin.Context) {
	resp, err := h.svc.Chat.ListConversations(c.Request.Context(), &pb.ListConversationsRequest{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	render(c, http.StatusOK, resp)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	resp, err := h.svc.Chat.UnreadCount(c.Request.Context(), &pb.UnreadCountRequest{})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": resp.GetCount()})
}

// --- helpers ---

func userIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || id == 0 {
		abortWithError(c, svcErr.Invalid("user_id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, svcErr.Invalid("%s", err.Error()))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		abortWithError(c, svcErr.Invalid("%s", err.Error()))
		return false
	}
	return true
}

// jsonOptions render responses with the proto field names. Unset scalars and
// empty lists are written out; unset optional fields are left out.
var jsonOptions = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

func render(c *gin.Context, code int, msg proto.Message) {
	b, err := jsonOptions.Marshal(msg)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(code, "application/json; charset=utf-8", b)
}

// abortWithError writes {"error", "reason"} with the status HTTPStatus
// picks for err. Internal failures are logged and hidden from the client.
func abortWithError(c *gin.Context, err error) {
	code := svcErr.HTTPStatus(err)
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context(), nil).Error("request failed", "err", err)
		msg = http.StatusText(code)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg, "reason": svcErr.Reason(err)})
}
