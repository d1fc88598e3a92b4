package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
	"shopcore/pkg/utils"
)

// อายุ token หลัง login
const tokenExpiry = 72 * time.Hour

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
	jwtSecret        string

	now func() time.Time
}

func NewUserService(
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
	jwtSecret string,
) services.UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		jwtSecret:        jwtSecret,
		now:              time.Now,
	}
}

// Register สมัครได้เฉพาะ email ที่ผ่าน verify code มาแล้ว
// record ของ code ถูกลบทิ้งหลังสมัครสำเร็จ
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	record, err := s.verificationRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.WarnContext(ctx, "Register without verification code", "email", email)
		return "", nil, services.ErrCodeNotVerified
	}
	if record.Code != req.Code {
		return "", nil, services.ErrCodeMismatch
	}
	if record.IsExpired(s.now()) {
		return "", nil, services.ErrCodeExpired
	}
	if !record.IsUsed {
		// ยังไม่เคยเรียก verify endpoint
		return "", nil, services.ErrCodeNotVerified
	}

	if existing, _ := s.userRepo.GetByEmail(ctx, email); existing != nil {
		return "", nil, fmt.Errorf("%w: email", services.ErrAlreadyExists)
	}
	if existing, _ := s.userRepo.GetByUsername(ctx, req.Username); existing != nil {
		return "", nil, fmt.Errorf("%w: username", services.ErrAlreadyExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      "customer",
		IsActive:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "email", email, "error", err)
		return "", nil, err
	}

	// ลบ code record ทิ้ง ใช้สมัครซ้ำไม่ได้
	if err := s.verificationRepo.Delete(ctx, email); err != nil {
		logger.WarnContext(ctx, "Failed to delete verification record", "email", email, "error", err)
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", email)
	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// ไม่บอกว่า email หรือ password ผิด
		return "", nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed", "email", email)
		return "", nil, services.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, services.ErrAccountDisabled
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	return user, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	users, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	return utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, tokenExpiry)
}
