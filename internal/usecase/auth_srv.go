package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-backend/internal/client"
	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FaceVerifier delegates the biometric match decision to the AI service
type FaceVerifier interface {
	VerifyFace(ctx context.Context, capturedImage, storedImage string) (*client.VerifyResult, error)
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	BiometricLogin(ctx context.Context, req *request.BiometricLoginRequest) (*response.AuthResponse, error)
	RegisterFace(ctx context.Context, ident utils.Identity, req *request.RegisterFaceRequest) error
}

type authService struct {
	repo     *repository.Repository
	verifier FaceVerifier
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	verifier FaceVerifier,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		verifier: verifier,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cek email sudah terdaftar
	exists, err := s.repo.User.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	// 5. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// 6. Issue token langsung setelah register
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. Unknown email dan salah password dibalas sama, biar email
	// terdaftar tidak bisa di-enumerate
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.issueToken(user)
}

func (s *authService) BiometricLogin(ctx context.Context, req *request.BiometricLoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Biometric login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for biometric login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, req.Email)
	}

	// 3. Tanpa enrolled reference, verifier tidak pernah dipanggil
	if !user.HasBiometric() {
		return nil, ErrBiometricNotEnrolled
	}

	// 4. Delegate match decision ke AI service
	result, err := s.verifier.VerifyFace(ctx, req.ImageBase64, *user.BiometricData)
	if err != nil {
		s.log.Error("Biometric verifier call failed", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if result.Error != "" || !result.Verified {
		s.log.Warn("Face not recognized",
			zap.String("user_id", user.ID.String()),
			zap.Float64("distance", result.Distance),
			zap.String("verifier_error", result.Error))
		return nil, ErrFaceNotRecognized
	}

	s.log.Info("User logged in via biometrics",
		zap.String("user_id", user.ID.String()),
		zap.Float64("distance", result.Distance))

	return s.issueToken(user)
}

func (s *authService) RegisterFace(ctx context.Context, ident utils.Identity, req *request.RegisterFaceRequest) error {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register face validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find caller
	user, err := s.repo.User.FindByEmail(ctx, ident.Subject)
	if err != nil {
		s.log.Error("Failed to find user for face registration", zap.Error(err), zap.String("email", ident.Subject))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, ident.Subject)
	}

	// 3. Overwrite unconditionally
	if err := s.repo.User.UpdateBiometric(ctx, user.ID, req.ImageBase64); err != nil {
		s.log.Error("Failed to store biometric data", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("store biometric: %w", err)
	}

	s.log.Info("Face registered", zap.String("user_id", user.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	token, expiresAt, err := utils.GenerateToken(user.Email, string(user.Role), s.config.JWT)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
