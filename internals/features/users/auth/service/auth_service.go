// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizogram_backend/internals/configs"
	authDTO "quizogram_backend/internals/features/users/auth/dto"
	authModel "quizogram_backend/internals/features/users/auth/model"
	profileModel "quizogram_backend/internals/features/users/profile/model"
	userModel "quizogram_backend/internals/features/users/user/model"
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   REGISTER
========================== */

// Register membuat user baru + profile default dalam satu transaksi.
// Username/email yang sudah terpakai → 409.
func Register(db *gorm.DB, input authDTO.RegisterRequest) (*userModel.UserModel, error) {
	userName := strings.TrimSpace(input.UserName)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_name = ? OR email = ?", userName, email).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa user")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Username atau email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengenkripsi password")
	}

	user := userModel.UserModel{
		UserName: userName,
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := profileModel.UserProfileModel{
			UserID:    user.ID,
			AvatarKey: profileModel.DefaultAvatarKey,
		}
		return tx.Create(&profile).Error
	}); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return &user, nil
}

/* ==========================
   LOGIN
========================== */

// Login menerima identifier (user_name atau email) + password.
func Login(db *gorm.DB, input authDTO.LoginRequest) (*userModel.UserModel, error) {
	identifier := strings.TrimSpace(input.Identifier)

	var user userModel.UserModel
	err := db.
		Where("user_name = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}

	return &user, nil
}

/* ==========================
   LOGIN GOOGLE
========================== */

// LoginGoogle memverifikasi Google ID token, membuat user baru kalau belum ada.
func LoginGoogle(db *gorm.DB, idToken string) (*userModel.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Google ID Token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca ID Token")
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = db.First(&user, "google_id = ?", googleID).Error
	if err == nil {
		if !user.IsActive {
			return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
		}
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	// User belum ada → buat baru dengan password acak yang tidak dipakai login.
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user Google")
	}

	newUser := userModel.UserModel{
		UserName: sanitizeUserName(name, email),
		Email:    email,
		Password: string(dummy),
		GoogleID: &googleID,
		IsActive: true,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		profile := profileModel.UserProfileModel{
			UserID:    newUser.ID,
			AvatarKey: profileModel.DefaultAvatarKey,
		}
		return tx.Create(&profile).Error
	}); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user Google")
	}

	return &newUser, nil
}

// sanitizeUserName menurunkan username dari nama Google; fallback ke prefix email.
func sanitizeUserName(name, email string) string {
	u := strings.ToLower(strings.TrimSpace(name))
	u = strings.ReplaceAll(u, " ", "_")
	if u == "" {
		if at := strings.Index(email, "@"); at > 0 {
			u = email[:at]
		}
	}
	if len(u) > 44 {
		u = u[:44]
	}
	// suffix pendek supaya tidak gampang tabrakan
	return u + "_" + uuid.NewString()[:5]
}

/* ==========================
   TOKEN
========================== */

// IssueAccessToken membuat JWT HS256 dengan sub=user_name dan claim user_id.
func IssueAccessToken(user *userModel.UserModel) (string, time.Time, error) {
	expiresAt := nowUTC().Add(configs.AccessTokenTTL())

	claims := jwt.MapClaims{
		"sub":     user.UserName,
		"user_id": user.ID.String(),
		"iat":     nowUTC().Unix(),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return signed, expiresAt, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout memasukkan token aktif ke blacklist sampai masa berlakunya habis.
func Logout(db *gorm.DB, tokenString string) error {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	expiredAt := nowUTC().Add(configs.AccessTokenTTL())
	if claims := parseClaimsUnverified(tokenString); claims != nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0).UTC()
		}
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil // sudah di-blacklist, idempotent
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	return nil
}

func parseClaimsUnverified(tokenString string) jwt.MapClaims {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}
