// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"practicals_backend/internals/configs"
	authModel "practicals_backend/internals/features/users/auth/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

var ErrRefreshTokenInvalid = errors.New("refresh token invalid or unknown")

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

/* ========================== ISSUE ========================== */

// IssueTokens builds an access/refresh pair for the user and persists the
// refresh hash for later rotation.
func IssueTokens(db *gorm.DB, user *authModel.UserModel, userAgent, ip string) (*TokenPair, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return nil, errors.New("JWT secrets not configured")
	}
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"role":      user.UserRole,
		"school_id": user.UserSchoolID.String(),
		"name":      user.UserFullName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"sub": user.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	row := authModel.RefreshToken{
		UserID:    user.UserID,
		TokenHash: ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTL),
	}
	if userAgent != "" {
		row.UserAgent = &userAgent
	}
	if ip != "" {
		row.IP = &ip
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

/* ========================== ROTATE ========================== */

// RotateRefreshToken validates the presented refresh token, deletes its hash
// (one-shot rotation) and issues a fresh pair.
func RotateRefreshToken(db *gorm.DB, refreshToken, userAgent, ip string) (*TokenPair, error) {
	secret := configs.JWTRefreshSecret
	if secret == "" {
		return nil, errors.New("JWT refresh secret not configured")
	}

	tok, err := jwt.Parse(refreshToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrRefreshTokenInvalid
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	hash := ComputeRefreshHash(refreshToken, secret)
	res := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > now()", hash).
		Delete(&authModel.RefreshToken{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrRefreshTokenInvalid
	}

	var user authModel.UserModel
	if err := db.Where("user_id = ? AND user_is_active = TRUE", userID).First(&user).Error; err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	return IssueTokens(db, &user, userAgent, ip)
}

/* ========================== REVOKE ========================== */

// RevokeUserRefreshTokens removes every stored refresh hash for the user
// (used by logout and password change).
func RevokeUserRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshToken{}).Error
}

// BlacklistAccessToken stores the raw access token until expiry.
func BlacklistAccessToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

func ComputeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
