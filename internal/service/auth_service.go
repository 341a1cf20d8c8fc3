package service

import (
	"context"
	"errors"
	"strings"

	"cyber_academy_backend/internal/config"
	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/internal/util"
	"cyber_academy_backend/pkg/tracing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	Token string
	User  *model.User
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (result *AuthResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "AuthService.Register")
	defer func() { tracing.EndSpan(span, err) }()

	user := &model.User{
		Username: strings.TrimSpace(in.Username),
		Email:    normalizeEmail(in.Email),
		Role:     model.Member,
	}
	if user.Username == "" || user.Email == "" || in.Password == "" {
		return nil, util.NewValidationError("All fields are required")
	}

	if err := s.checkUnique(ctx, user); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	if err := s.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent registration; name the field
			if cerr := s.checkUnique(ctx, user); cerr != nil {
				return nil, cerr
			}
			return nil, util.NewConflictError("account")
		}
		return nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) checkUnique(ctx context.Context, user *model.User) error {
	exists, err := s.UserRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return util.NewConflictError("email")
	}

	exists, err = s.UserRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if exists {
		return util.NewConflictError("username")
	}
	return nil
}

// Login answers unknown emails and wrong passwords identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (result *AuthResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "AuthService.Login")
	defer func() { tracing.EndSpan(span, err) }()

	user, err := s.UserRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// keep the timing close to the wrong-password path
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cyber-academy-placeholder"), bcrypt.DefaultCost)

// Authenticate resolves a bearer token to its user. Every failure, including
// a subject that no longer exists, is reported as unauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, util.ErrUnauthenticated
	}

	user, err := s.UserRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
