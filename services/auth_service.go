package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/repository"
	"github.com/hgpnguyen/restaurant/utils"
)

// AuthService handles register/login. Tokens carry only the user id; the role
// is re-derived per request.
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

func (s *AuthService) Register(username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, ErrInvalidLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidLogin
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
