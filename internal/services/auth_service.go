package services

import (
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users repository.Users
	key   []byte
	ttl   time.Duration
}

func NewAuthService(users repository.Users, key []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, key: key, ttl: ttl}
}

// Register creates a pet-owner account. Role assignment beyond OWNER
// is an admin operation.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateCredentials(req.FullName, req.Username, req.Email, req.Password); err != nil {
		return nil, err
	}

	if taken, err := s.users.UsernameTaken(req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.Duplicate("username already taken")
	}
	if taken, err := s.users.EmailTaken(req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.Duplicate("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	user.SetRoles([]models.Role{models.RoleOwner})

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	return s.respondWithToken(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NotAuthenticated("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NotAuthenticated("invalid username or password")
	}

	return s.respondWithToken(user)
}

// CurrentUser reloads the principal's account so /auth/me reflects
// role changes made after the token was issued.
func (s *AuthService) CurrentUser(p principal.Principal) (*models.User, error) {
	return s.users.GetByID(p.UserID)
}

func (s *AuthService) respondWithToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.Username,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func validateCredentials(fullName, username, email, password string) error {
	if strings.TrimSpace(fullName) == "" {
		return apperrors.Validation("full name is required")
	}
	if strings.TrimSpace(username) == "" || len(username) > 64 {
		return apperrors.Validation("username is required and must be at most 64 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.Validation("email address is not valid")
	}
	if len(password) < 8 {
		return apperrors.Validation("password must be at least 8 characters")
	}
	return nil
}
