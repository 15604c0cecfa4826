package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kolhesatish/content-app/internal/allowance"
	"github.com/kolhesatish/content-app/internal/auth/domain"
	"github.com/kolhesatish/content-app/internal/auth/dto"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	PasswordCost      = 12
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	allowance    *allowance.Service
	logger       *zap.Logger
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, allowanceSvc *allowance.Service, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		allowance:    allowanceSvc,
		logger:       logger,
	}
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", apperrors.ErrInvalidRequest)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", apperrors.ErrInvalidRequest, MinPasswordLength)
	}
	return nil
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(input.Username)
	if err := validateCredentials(username, input.Password); err != nil {
		return nil, err
	}

	existingUser, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), PasswordCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	seed := s.allowance.Initial()

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		PasswordHash:   string(hashedPassword),
		Credits:        seed.Credits,
		LastRefillDate: seed.LastRefillDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenService.Generate(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))

	return &dto.AuthResponse{
		Message:   "User created successfully",
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.UserOutput{ID: user.ID, Username: user.Username, Credits: user.Credits},
	}, nil
}

// Login verifies the password and applies the daily refill before answering.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrInvalidRequest)
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.logger.Info("failed login", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	state, err := s.allowance.Refresh(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenService.Generate(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.UserOutput{ID: user.ID, Username: user.Username, Credits: state.Credits},
	}, nil
}

// Me returns the account snapshot after applying the daily refill.
func (s *UserService) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}

	state, err := s.allowance.Refresh(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		User: dto.UserOutput{ID: user.ID, Username: user.Username, Credits: state.Credits},
	}, nil
}

// Authenticate resolves a bearer token to a user ID.
func (s *UserService) Authenticate(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: no token provided", apperrors.ErrUnauthenticated)
	}

	claims, err := s.tokenService.VerifyAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: invalid token", apperrors.ErrUnauthenticated)
	}
	return claims.UserID, nil
}
