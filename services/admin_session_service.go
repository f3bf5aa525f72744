package services

import (
	"context"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"

	"github.com/google/uuid"
)

// AdminSessionService manages admin session rows in the pricing database.
type AdminSessionService struct{}

func NewAdminSessionService() *AdminSessionService {
	return &AdminSessionService{}
}

// CreateSession stores a hashed-token session for an issued JWT.
func (s *AdminSessionService) CreateSession(ctx context.Context, adminID uuid.UUID, tokenHash, ip, userAgent string, expiresAt time.Time) error {
	session := models.AdminSession{
		AdminID:        adminID,
		TokenHash:      tokenHash,
		IPAddress:      ip,
		UserAgent:      userAgent,
		ExpiresAt:      expiresAt,
		LastActivityAt: time.Now(),
	}
	return config.PricingGorm.WithContext(ctx).Create(&session).Error
}

// UpdateSessionActivity bumps the last-activity timestamp for a live session.
func (s *AdminSessionService) UpdateSessionActivity(ctx context.Context, tokenHash string) error {
	return config.PricingGorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND expires_at > ?", tokenHash, time.Now()).
		Update("last_activity_at", time.Now()).Error
}

// RevokeSession deletes the session row for a token (logout).
func (s *AdminSessionService) RevokeSession(ctx context.Context, tokenHash string) error {
	return config.PricingGorm.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&models.AdminSession{}).Error
}

// SessionExists reports whether a non-expired session row backs the token.
func (s *AdminSessionService) SessionExists(ctx context.Context, tokenHash string) (bool, error) {
	var count int64
	err := config.PricingGorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND expires_at > ?", tokenHash, time.Now()).
		Count(&count).Error
	return count > 0, err
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminSessionService *AdminSessionService

// GetAdminSessionService returns the global session service instance
func GetAdminSessionService() *AdminSessionService {
	if adminSessionService == nil {
		adminSessionService = NewAdminSessionService()
	}
	return adminSessionService
}
