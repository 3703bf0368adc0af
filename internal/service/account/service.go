// Package account handles registration, login and profile management.
package account

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/repository"
)

// ProfileInput is the editable part of a profile. Zero LookingFor, MinAge,
// MaxAge and MaxDistance fall back to everyone, 18, 99 and 100.
type ProfileInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Age         int      `json:"age" validate:"gte=18,lte=120"`
	Gender      string   `json:"gender" validate:"oneof=male female other"`
	LookingFor  string   `json:"looking_for" validate:"oneof=male female everyone"`
	City        string   `json:"city" validate:"max=100"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	Bio         string   `json:"bio" validate:"max=2000"`
	Occupation  string   `json:"occupation" validate:"max=100"`
	Photos      []string `json:"photos" validate:"max=3,dive,max=500"`
	MinAge      int      `json:"min_age" validate:"gte=18"`
	MaxAge      int      `json:"max_age" validate:"gtefield=MinAge"`
	MaxDistance int      `json:"max_distance" validate:"gte=0"`
	Interests   []string `json:"interests" validate:"max=50,dive,max=50"`
}

// Session is the result of Register and Login.
type Session struct {
	User  *db.User
	Token auth.Token
}

// Service implements the account operations.
type Service struct {
	appCtx   *app.AppContext
	users    *repository.UserRepository
	issuer   *auth.Issuer
	validate *validator.Validate
}

// NewService wires the account service.
func NewService(appCtx *app.AppContext, issuer *auth.Issuer) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Service{
		appCtx:   appCtx,
		users:    repository.NewUserRepository(appCtx.DB),
		issuer:   issuer,
		validate: v,
	}
}

// Register creates an account and signs the new user in.
//
// Behavior:
//   - Email is trimmed and lower-cased; it must be a valid address.
//   - Password must be at least auth.MinPasswordLength bytes.
//   - A taken email → ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if err := s.validate.Var(email, "required,email,max=128"); err != nil {
		return nil, svcErr.Invalid("email: invalid address")
	}

	hash, err := auth.HashPassword(password)
	if errors.Is(err, auth.ErrWeakPassword) {
		return nil, svcErr.Invalid("password: must be at least %d characters", auth.MinPasswordLength)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &db.User{
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		LastActiveAt: s.appCtx.Now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.appCtx.Logger).Info("user registered", "user_id", u.ID)
	return s.session(u)
}

// Login verifies credentials and stamps last_active_at. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, svcErr.ErrNotFound) {
		return nil, svcErr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, svcErr.ErrInvalidCredentials
	}

	u.LastActiveAt = s.appCtx.Now()
	if err := s.users.TouchLastActive(ctx, u.ID, u.LastActiveAt); err != nil {
		logger.FromContext(ctx, s.appCtx.Logger).Warn("failed to stamp last activity", "user_id", u.ID, "err", err)
	}
	return s.session(u)
}

func (s *Service) session(u *db.User) (*Session, error) {
	tok, err := s.issuer.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{User: u, Token: tok}, nil
}

// GetProfile returns the profile of userID; ErrNotFound when the user or
// the profile does not exist.
func (s *Service) GetProfile(ctx context.Context, userID uint64) (*db.Profile, error) {
	p, err := s.users.FindProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return nil, svcErr.ErrNotFound
	}
	return p, nil
}

// UpsertProfile validates in and creates or replaces the profile of userID.
func (s *Service) UpsertProfile(ctx context.Context, userID uint64, in ProfileInput) (*db.Profile, error) {
	in = withDefaults(in)
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}

	var saved *db.Profile
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		exists, err := users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return svcErr.ErrNotFound
		}

		p, err := users.FindProfile(ctx, userID)
		if err != nil {
			return err
		}
		if p == nil {
			p = &db.Profile{UserID: userID}
		}
		apply(p, in)
		if err := users.SaveProfile(ctx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		saved = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.appCtx.Logger).Debug("profile saved", "user_id", userID)
	return saved, nil
}

// DeleteAccount removes the user and its profile. Likes, matches and
// messages stay behind.
func (s *Service) DeleteAccount(ctx context.Context, userID uint64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	logger.FromContext(ctx, s.appCtx.Logger).Info("account deleted", "user_id", userID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func withDefaults(in ProfileInput) ProfileInput {
	in.Name = strings.TrimSpace(in.Name)
	if in.LookingFor == "" {
		in.LookingFor = db.LookingForEveryone
	}
	if in.MinAge == 0 {
		in.MinAge = 18
	}
	if in.MaxAge == 0 {
		in.MaxAge = 99
	}
	if in.MaxDistance == 0 {
		in.MaxDistance = 100
	}
	return in
}

func apply(p *db.Profile, in ProfileInput) {
	p.Name = in.Name
	p.Age = in.Age
	p.Gender = in.Gender
	p.LookingFor = in.LookingFor
	p.City = in.City
	p.Latitude = in.Latitude
	p.Longitude = in.Longitude
	p.Bio = in.Bio
	p.Occupation = in.Occupation
	p.SetPhotos(in.Photos)
	p.MinAge = in.MinAge
	p.MaxAge = in.MaxAge
	p.MaxDistance = in.MaxDistance
	p.Interests = db.Interests(in.Interests)
	if p.Interests == nil {
		p.Interests = db.Interests{}
	}
}

// invalidInput turns the first validator failure into an ErrInvalidArgument.
func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return svcErr.Invalid("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return svcErr.Invalid("%s: failed %s", fe.Field(), fe.Tag())
	}
	return svcErr.Invalid("%s", err.Error())
}
