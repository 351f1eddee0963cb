package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fridgetofeast/domain"
	"fridgetofeast/entities"
	"fridgetofeast/internal/utils"
	"fridgetofeast/internal/utils/mailing"
	"fridgetofeast/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetMe(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdatePrefs(ctx context.Context, req domain.UpdatePrefsRequest, userID string) (domain.MeResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := newUser(req.Email, string(hashed), req.Name)
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	// Best effort; registration must not fail on a mail outage.
	_ = s.sendVerifyMail(user.Email)

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

func (s *userService) GetMe(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}
	return toMeResponse(user), nil
}

func (s *userService) UpdatePrefs(ctx context.Context, req domain.UpdatePrefsRequest, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	user.Dietary = strings.Join(req.Dietary, "|")
	user.Allergies = strings.Join(req.Allergies, "|")
	if req.TimePreference != "" {
		user.TimePreference = req.TimePreference
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.MeResponse{}, err
	}
	return toMeResponse(user), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerifyMail(user.Email)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"email": user.Email,
	}, time.Minute*30)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf("<p>Click <a href=%q>here</a> to reset your password. The link expires in 30 minutes.</p>", link)
	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) sendVerifyMail(email string) error {
	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"email": email,
	}, time.Hour*24)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf("<p>Welcome! Click <a href=%q>here</a> to verify your email address.</p>", link)
	return mailing.SendMail(email, "Verify your email", body)
}

func toMeResponse(user *entities.User) domain.MeResponse {
	return domain.MeResponse{
		ID:             user.ID.String(),
		Email:          user.Email,
		Name:           user.Name,
		IsVerified:     user.IsVerified,
		Dietary:        splitPrefs(user.Dietary),
		Allergies:      splitPrefs(user.Allergies),
		TimePreference: user.TimePreference,
	}
}

func splitPrefs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newUser(email, password, name string) *entities.User {
	return &entities.User{
		Email:          email,
		Password:       password,
		Name:           name,
		TimePreference: "any",
	}
}
