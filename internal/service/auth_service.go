package service

import (
	"errors"
	"strings"
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/pkg/jwt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrEmailNotAllowed = errors.New("email domain not allowed")
)

// EnsureUserInput carries the profile returned by the identity provider.
type EnsureUserInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"max=255"`
	PictureURL  string `json:"picture_url" validate:"omitempty,url,max=1024"`
}

type AuthService interface {
	EnsureUser(input *EnsureUserInput) (*model.User, error)
	ResolveIdentity(userID uuid.UUID) (model.Identity, error)
	IssueToken(user *model.User) (string, error)
}

type AuthOptions struct {
	Secret        []byte
	TokenTTL      time.Duration
	AllowedDomain string
}

type authService struct {
	userRepo repository.UserRepository
	opts     AuthOptions
}

func NewAuthService(userRepo repository.UserRepository, opts AuthOptions) AuthService {
	return &authService{userRepo: userRepo, opts: opts}
}

// EnsureUser finds the user by email or creates one with a zero balance.
// Profile fields are refreshed on every sign-in.
func (s *authService) EnsureUser(input *EnsureUserInput) (*model.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !s.emailAllowed(input.Email) {
		return nil, ErrEmailNotAllowed
	}

	user, err := s.userRepo.FindByEmail(input.Email)
	if err == nil {
		changed := false
		if input.DisplayName != "" && input.DisplayName != user.DisplayName {
			user.DisplayName = input.DisplayName
			changed = true
		}
		if input.PictureURL != "" && input.PictureURL != user.PictureURL {
			user.PictureURL = input.PictureURL
			changed = true
		}
		if changed {
			if err := s.userRepo.Update(user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.Email
	}
	user = &model.User{
		Email:       input.Email,
		DisplayName: displayName,
		PictureURL:  input.PictureURL,
		Balance:     decimal.Zero,
	}
	user.CreatedBy = "signin"
	if err := s.userRepo.Create(user); err != nil {
		// a concurrent first sign-in may have inserted the row already
		if existing, findErr := s.userRepo.FindByEmail(input.Email); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) emailAllowed(email string) bool {
	if s.opts.AllowedDomain == "" {
		return true
	}
	return strings.HasSuffix(email, "@"+strings.ToLower(s.opts.AllowedDomain))
}

// ResolveIdentity loads the current user row so admin changes apply to live sessions.
func (s *authService) ResolveIdentity(userID uuid.UUID) (model.Identity, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Identity{}, ErrUnauthenticated
		}
		return model.Identity{}, err
	}
	return user.Identity(), nil
}

func (s *authService) IssueToken(user *model.User) (string, error) {
	return jwt.GenerateToken(s.opts.Secret, user.ID, user.Email, s.opts.TokenTTL)
}
