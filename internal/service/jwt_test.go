package service

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/VistorGiese/accounts-service/internal/apperrors"
)

const (
	testSecret = "test-secret-key-at-least-32-chars-long"
	testTTL    = time.Hour
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewJWTService(t *testing.T) {
	service := NewJWTService(testSecret, testTTL)
	if service == nil {
		t.Fatal("NewJWTService returned nil")
	}

	if got := service.TTL(); got != testTTL {
		t.Errorf("TTL() = %v, want %v", got, testTTL)
	}
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	service := NewJWTService("", testTTL)

	if service != nil {
		t.Error("NewJWTService() should return nil for empty secret")
	}
}

// =============================================================================
// Generate / Validate Tests
// =============================================================================

func TestGenerate_RoundTrip(t *testing.T) {
	service := NewJWTService(testSecret, testTTL)

	tests := []struct {
		name     string
		userID   int64
		username string
	}{
		{
			name:     "valid user",
			userID:   1,
			username: "alice",
		},
		{
			name:     "large user ID",
			userID:   9223372036854775807,
			username: "bob",
		},
		{
			name:     "empty username",
			userID:   42,
			username: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Generate(tt.userID, tt.username)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if token == "" {
				t.Fatal("Generated token is empty")
			}

			claims, err := service.Validate(token)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("Claims.UserID = %v, want %v", claims.UserID, tt.userID)
			}
			if claims.Username != tt.username {
				t.Errorf("Claims.Username = %v, want %v", claims.Username, tt.username)
			}
		})
	}
}

func TestGenerate_ExpirySetFromTTL(t *testing.T) {
	service := NewJWTService(testSecret, testTTL)

	before := time.Now()
	token, err := service.Generate(1, "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := service.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	expiry := claims.ExpiresAt.Time
	wantMin := before.Add(testTTL).Add(-2 * time.Second)
	wantMax := time.Now().Add(testTTL).Add(2 * time.Second)
	if expiry.Before(wantMin) || expiry.After(wantMax) {
		t.Errorf("ExpiresAt = %v, want ~%v after issuance", expiry, testTTL)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	service := NewJWTService(testSecret, -time.Minute)

	token, err := service.Generate(1, "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = service.Validate(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("Validate() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidate_TamperedPayload(t *testing.T) {
	service := NewJWTService(testSecret, testTTL)

	token, err := service.Generate(1, "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	// Swap the user id claim while keeping the original signature.
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	tampered := strings.Replace(string(payload), `"user_id":1`, `"user_id":2`, 1)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(tampered))

	_, err = service.Validate(strings.Join(parts, "."))
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidate_MalformedToken(t *testing.T) {
	service := NewJWTService(testSecret, testTTL)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "garbage"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "not base64", token: "!!.!!.!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Validate(tt.token)
			if !errors.Is(err, apperrors.ErrTokenInvalid) {
				t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	service := NewJWTService(testSecret, testTTL)
	other := NewJWTService("a-completely-different-signing-secret!!", testTTL)

	token, err := other.Generate(1, "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = service.Validate(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidate_RejectsUnsignedToken(t *testing.T) {
	service := NewJWTService(testSecret, testTTL)

	// alg "none" token: header {"alg":"none","typ":"JWT"}, payload {"user_id":1}
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":1}`))
	token := header + "." + payload + "."

	_, err := service.Validate(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
	}
}
