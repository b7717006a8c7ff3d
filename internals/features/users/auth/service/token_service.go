// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kdm_backend/internals/configs"
	authModel "kdm_backend/internals/features/users/auth/model"
	userModel "kdm_backend/internals/features/users/user/model"
	helper "kdm_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

/* ==========================
   Claims & issuance
========================== */

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Hash refresh token sebelum disimpan: tabel refresh_tokens tidak pernah
// memegang raw token.
func computeRefreshHash(rawToken, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(rawToken))
	return hex.EncodeToString(mac.Sum(nil))
}

func storeRefreshToken(db *gorm.DB, userID uuid.UUID, rawToken, secret string, expires time.Time) error {
	return db.Create(&authModel.RefreshToken{
		UserID:    userID,
		Token:     computeRefreshHash(rawToken, secret),
		ExpiresAt: expires,
	}).Error
}

func deleteRefreshToken(db *gorm.DB, rawToken, secret string) error {
	return db.Where("token = ?", computeRefreshHash(rawToken, secret)).
		Delete(&authModel.RefreshToken{}).Error
}

func setRefreshCookie(c *fiber.Ctx, rawToken string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    rawToken,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

/* ==========================
   Refresh endpoint
========================== */

// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB
	h := computeRefreshHash(refreshCookie, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = ?)`, h).Scan(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama
	if err := deleteRefreshToken(db, refreshCookie, refreshSecret); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	now := nowUTC()

	accessToken, err := signToken(buildAccessClaims(user, now), jwtSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	newRefresh, err := signToken(buildRefreshClaims(user.ID, now), refreshSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	refreshExpires := now.Add(refreshTTLDefault)
	if err := storeRefreshToken(db, user.ID, newRefresh, refreshSecret, refreshExpires); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}
	setRefreshCookie(c, newRefresh, refreshExpires)

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": accessToken,
	})
}
