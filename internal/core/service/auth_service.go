package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/dto"
	"github.com/magicvilla/villa-api/internal/core/ports"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
	"github.com/magicvilla/villa-api/internal/pkg/metrics"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// unknownUserHash is compared against when the user name does not exist so an
// unknown user costs the same bcrypt work as a wrong password.
var unknownUserHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("villa-api-unknown-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

// Claim names carried by issued tokens.
const (
	ClaimSubject  = "sub"
	ClaimUserName = "unique_name"
	ClaimRole     = "role"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
	compare   func(hash, password []byte) error
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
		compare:   bcrypt.CompareHashAndPassword,
	}
}

// IsUniqueUser reports whether no principal uses userName, ignoring case.
func (s *AuthService) IsUniqueUser(ctx context.Context, userName string) (bool, error) {
	u, err := s.findByUserName(ctx, userName)
	if err != nil {
		return false, err
	}
	return u == nil, nil
}

func (s *AuthService) Register(ctx context.Context, in dto.RegistrationRequest) (*dto.UserDTO, error) {
	unique, err := s.IsUniqueUser(ctx, in.UserName)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if !unique {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.Errorf(domain.ErrConflict, "Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = domain.RoleCustomer
	}
	user := &domain.User{
		UserName:     in.UserName,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return nil, domain.Errorf(domain.ErrConflict, "Username already exists")
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Int("user_id", user.ID).Str("user_name", user.UserName).Str("role", user.Role).Msg("user registered")
	return toUserDTO(user), nil
}

// Login verifies the credentials and issues a token. Unknown users and wrong
// passwords both yield an empty response and a nil error.
func (s *AuthService) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	start := s.now()
	user, err := s.findByUserName(ctx, in.UserName)
	if err != nil {
		return nil, err
	}
	hash := unknownUserHash()
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if s.compare(hash, []byte(in.Password)) != nil || user == nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		s.logger.Info().Str("user_name", in.UserName).Msg("login rejected")
		return &dto.LoginResponse{}, nil
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.LoginDuration.Observe(s.now().Sub(start).Seconds())
	return &dto.LoginResponse{User: toUserDTO(user), Token: token}, nil
}

func (s *AuthService) findByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return s.repo.Get(ctx, query.EqFold(repository.ColUserName, userName), false)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		ClaimSubject:  strconv.Itoa(user.ID),
		ClaimUserName: user.UserName,
		ClaimRole:     user.Role,
		"iat":         now.Unix(),
		"nbf":         now.Unix(),
		"exp":         now.Add(s.tokenTTL).Unix(),
		"jti":         uuid.NewString(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}
