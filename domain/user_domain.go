package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetMe           = "user profile retrieved successfully"
	MessageSuccessUpdatePrefs     = "preferences updated successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessForgotPassword  = "password reset email sent"
	MessageSuccessResetPassword   = "password reset successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedUpdatePrefs     = "failed to update preferences"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedForgotPassword  = "failed to send password reset email"
	MessageFailedResetPassword   = "failed to reset password"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrWrongCredentials       = errors.New("wrong email or password")
	ErrEmailNotVerified       = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	MeResponse struct {
		ID             string   `json:"id"`
		Email          string   `json:"email"`
		Name           string   `json:"name"`
		IsVerified     bool     `json:"is_verified"`
		Dietary        []string `json:"dietary"`
		Allergies      []string `json:"allergies"`
		TimePreference string   `json:"time_preference"`
	}

	UpdatePrefsRequest struct {
		Dietary        []string `json:"dietary" validate:"omitempty"`
		Allergies      []string `json:"allergies" validate:"omitempty"`
		TimePreference string   `json:"time_preference" validate:"omitempty,oneof=quick under30 any"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
