// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrEmptyPassword   = errors.New("password must not be empty")
)

// HashPassword returns the bcrypt hash stored in the user table
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks a plaintext password against a stored hash.
// Any mismatch, including a malformed hash, is reported as ErrInvalidPassword.
func ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}

// BearerToken extracts the token from an Authorization header value.
// The scheme word before the first space is not checked.
func BearerToken(header string) string {
	_, rest, found := strings.Cut(header, " ")
	if !found {
		return ""
	}
	token, _, _ := strings.Cut(rest, " ")
	return token
}

type usernameContextKey struct{}

// WithUsername attaches the authenticated username to ctx
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameContextKey{}, username)
}

// UsernameFromContext returns the username set by the auth middleware, or ""
func UsernameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	username, _ := ctx.Value(usernameContextKey{}).(string)
	return username
}
