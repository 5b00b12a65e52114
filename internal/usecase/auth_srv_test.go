package usecase

import (
	"context"
	"errors"
	"testing"

	"ecommerce-backend/internal/client"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	repo, users, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, &fakeVerifier{}, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())

	require.Len(t, users.users, 1)
	user := users.users[0]
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "USER", string(user.Role))
	// Stored hash never equals the plaintext
	assert.NotEqual(t, "secret123", user.PasswordHash)

	claims, err := utils.ParseToken(resp.Token, testConfig().JWT)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, "USER", claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, users, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, &fakeVerifier{}, testConfig(), zap.NewNop())

	req := &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, users.users, 1)
}

func TestRegisterValidation(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, &fakeVerifier{}, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		FullName: "Alice",
		Email:    "not-an-email",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginSuccess(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, &fakeVerifier{}, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, &fakeVerifier{}, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, wrongPassErr := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestBiometricLoginNotEnrolled(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	verifier := &fakeVerifier{result: &client.VerifyResult{Verified: true}}
	svc := NewAuthService(repo, verifier, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.BiometricLogin(ctx, &request.BiometricLoginRequest{
		Email:       "alice@example.com",
		ImageBase64: "Y2FwdHVyZWQ=",
	})
	assert.ErrorIs(t, err, ErrBiometricNotEnrolled)
	// No enrolled reference means the verifier must never be consulted
	assert.Zero(t, verifier.calls)
}

func TestBiometricLoginVerified(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	verifier := &fakeVerifier{result: &client.VerifyResult{Verified: true, Distance: 0.21}}
	svc := NewAuthService(repo, verifier, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	ident := utils.Identity{Subject: "alice@example.com", Role: "USER"}
	require.NoError(t, svc.RegisterFace(ctx, ident, &request.RegisterFaceRequest{
		ImageBase64: "c3RvcmVk",
	}))

	resp, err := svc.BiometricLogin(ctx, &request.BiometricLoginRequest{
		Email:       "alice@example.com",
		ImageBase64: "Y2FwdHVyZWQ=",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, verifier.calls)
}

func TestBiometricLoginNotRecognized(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	verifier := &fakeVerifier{result: &client.VerifyResult{Verified: false, Distance: 0.92}}
	svc := NewAuthService(repo, verifier, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	ident := utils.Identity{Subject: "alice@example.com", Role: "USER"}
	require.NoError(t, svc.RegisterFace(ctx, ident, &request.RegisterFaceRequest{
		ImageBase64: "c3RvcmVk",
	}))

	_, err = svc.BiometricLogin(ctx, &request.BiometricLoginRequest{
		Email:       "alice@example.com",
		ImageBase64: "Y2FwdHVyZWQ=",
	})
	assert.ErrorIs(t, err, ErrFaceNotRecognized)
}

func TestBiometricLoginVerifierDown(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	verifier := &fakeVerifier{err: errors.New("connection refused")}
	svc := NewAuthService(repo, verifier, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	ident := utils.Identity{Subject: "alice@example.com", Role: "USER"}
	require.NoError(t, svc.RegisterFace(ctx, ident, &request.RegisterFaceRequest{
		ImageBase64: "c3RvcmVk",
	}))

	_, err = svc.BiometricLogin(ctx, &request.BiometricLoginRequest{
		Email:       "alice@example.com",
		ImageBase64: "Y2FwdHVyZWQ=",
	})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestBiometricLoginUnknownUser(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, &fakeVerifier{}, testConfig(), zap.NewNop())

	_, err := svc.BiometricLogin(context.Background(), &request.BiometricLoginRequest{
		Email:       "nobody@example.com",
		ImageBase64: "Y2FwdHVyZWQ=",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterFaceOverwrites(t *testing.T) {
	repo, users, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, &fakeVerifier{}, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	ident := utils.Identity{Subject: "alice@example.com", Role: "USER"}
	require.NoError(t, svc.RegisterFace(ctx, ident, &request.RegisterFaceRequest{ImageBase64: "Zmlyc3Q="}))
	require.NoError(t, svc.RegisterFace(ctx, ident, &request.RegisterFaceRequest{ImageBase64: "c2Vjb25k"}))

	require.NotNil(t, users.users[0].BiometricData)
	assert.Equal(t, "c2Vjb25k", *users.users[0].BiometricData)
}
