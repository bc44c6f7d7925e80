// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "practicals_backend/internals/features/users/auth/dto"
	model "practicals_backend/internals/features/users/auth/model"
	"practicals_backend/internals/features/users/auth/service"
	helper "practicals_backend/internals/helpers"
	helperAuth "practicals_backend/internals/helpers/auth"
)

/* ========================================================
   Controller
======================================================== */

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

/* ========================================================
   Handlers
======================================================== */

// POST /auth/login
// Login is tenant-scoped: the account must belong to the school named by
// X-School-ID, so the same email can exist independently per school.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_email = ? AND user_school_id = ?", req.Email, schoolID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if !service.CheckPassword(user.UserPasswordHash, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	pair, err := service.IssueTokens(ctl.DB, &user, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserProfile(&user),
	})
}

// POST /auth/refresh-token
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing refresh token")
	}

	pair, err := service.RotateRefreshToken(ctl.DB, req.RefreshToken, c.Get("User-Agent"), c.IP())
	if err != nil {
		if errors.Is(err, service.ErrRefreshTokenInvalid) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate tokens")
	}
	return helper.JsonOK(c, "Token refreshed", pair)
}

// POST /auth/logout
// Blacklists the presented access token and drops all refresh tokens so the
// client's cached credential is dead on arrival everywhere.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	if tok, ok := c.Locals("access_token").(string); ok && tok != "" {
		// expiry slot mirrors the access TTL; the cleanup scheduler prunes the rest
		if err := service.BlacklistAccessToken(ctl.DB, tok, time.Now().Add(30*time.Minute)); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
		}
	}
	if err := service.RevokeUserRefreshTokens(ctl.DB, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke refresh tokens")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", dto.NewUserProfile(&user))
}

// POST /auth/change-password
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"new_password": {"new password must be 8-72 characters"},
		})
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if !service.CheckPassword(user.UserPasswordHash, req.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password_hash", hash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	// old sessions die with the password
	if err := service.RevokeUserRefreshTokens(ctl.DB, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke sessions")
	}
	return helper.JsonUpdated(c, "Password changed", nil)
}
