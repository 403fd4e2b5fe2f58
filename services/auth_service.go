package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLen = 6

// AuthService handles registration, sign-in and the profile.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterIn struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Mobile    string `json:"mobile"`
}

type LoginRes struct {
	Token    string       `json:"token"`
	User     *entity.User `json:"user"`
	Redirect string       `json:"redirect"`
}

type ProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Mobile    *string `json:"mobile"`
	Password  *string `json:"password"`
}

// Register creates an active account with role User.
func (s *AuthService) Register(ctx context.Context, in RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case username == "" || len(username) > 50:
		return nil, invalid("username must be 1 to 50 characters")
	case len(in.Password) < MinPasswordLen:
		return nil, invalid("password must be at least %d characters", MinPasswordLen)
	}

	count, err := s.userRepo.CountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:  username,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
		Mobile:    strings.TrimSpace(in.Mobile),
		Active:    true,
		Role:      entity.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a JWT. Each failure reason has
// its own error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginRes, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	if !user.Active {
		return nil, ErrInactiveUser
	}
	role, err := entity.ParseRole(string(user.Role))
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, User: user, Redirect: role.LandingPath()}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

// UpdateProfile applies the non-nil fields. A new password is re-hashed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*entity.User, error) {
	updates := map[string]any{}
	if in.FirstName != nil {
		if v := strings.TrimSpace(*in.FirstName); v != "" {
			updates["first_name"] = v
		}
	}
	if in.LastName != nil {
		if v := strings.TrimSpace(*in.LastName); v != "" {
			updates["last_name"] = v
		}
	}
	if in.Email != nil {
		if v := strings.ToLower(strings.TrimSpace(*in.Email)); v != "" {
			updates["email"] = v
		}
	}
	if in.Mobile != nil {
		updates["mobile"] = strings.TrimSpace(*in.Mobile)
	}
	if in.Password != nil && *in.Password != "" {
		if len(*in.Password) < MinPasswordLen {
			return nil, invalid("password must be at least %d characters", MinPasswordLen)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, userID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(ctx, userID)
}
