package handler

import (
	pb "github.com/oggyb/muzz-dating/internal/proto/dating"
)

// Request bodies carry the gin binding rules; the generated messages do not.

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r registerRequest) proto() *pb.RegisterRequest {
	return &pb.RegisterRequest{Email: r.Email, Password: r.Password}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginRequest) proto() *pb.LoginRequest {
	return &pb.LoginRequest{Email: r.Email, Password: r.Password}
}

// profileRequest is the PUT /api/profile body. MinAge/MaxAge/MaxDistance/
// LookingFor fall back to 18/99/100/everyone when zero.
type profileRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Age         int32    `json:"age" binding:"required"`
	Gender      string   `json:"gender" binding:"required"`
	LookingFor  string   `json:"looking_for"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Bio         string   `json:"bio"`
	Occupation  string   `json:"occupation"`
	Photos      []string `json:"photos"`
	MinAge      int32    `json:"min_age"`
	MaxAge      int32    `json:"max_age"`
	MaxDistance int32    `json:"max_distance"`
	Interests   []string `json:"interests"`
}

func (r profileRequest) proto() *pb.Profile {
	return &pb.Profile{
		Name:        r.Name,
		Age:         r.Age,
		Gender:      r.Gender,
		LookingFor:  r.LookingFor,
		City:        r.City,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Bio:         r.Bio,
		Occupation:  r.Occupation,
		Photos:      r.Photos,
		MinAge:      r.MinAge,
		MaxAge:      r.MaxAge,
		MaxDistance: r.MaxDistance,
		Interests:   r.Interests,
	}
}

// pageQuery is the query string of the paginated feeds.
type pageQuery struct {
	PaginationToken *string `form:"pagination_token"`
	Limit           int32   `form:"limit"`
}

type messageRequest struct {
	Content string `json:"content"`
}
