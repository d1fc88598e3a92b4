package services

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/dto"
	"shopcore/domain/models"
)

type UserService interface {
	// Register ต้องผ่าน verify code ของ email นั้นมาก่อน record จะถูกลบหลังสมัครสำเร็จ
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	GenerateJWT(user *models.User) (string, error)
}

type VerificationService interface {
	// RequestCode ออก code 6 หลักทับของเดิม แล้วส่งผ่าน mailer
	// mailer ล้มเหลว error จะไหลกลับไปหา caller ตรง ๆ
	RequestCode(ctx context.Context, email string) error
	// VerifyCode ตรวจ code: not found / expired (>10 นาที) / mismatch
	// สำเร็จแล้ว mark used
	VerifyCode(ctx context.Context, email, code string) error
}
