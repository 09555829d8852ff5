// file: internals/features/users/auth/service/auth_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quizogram_backend/internals/configs"
	"quizogram_backend/internals/databases/testdb"
	authDTO "quizogram_backend/internals/features/users/auth/dto"
	authModel "quizogram_backend/internals/features/users/auth/model"
	profileModel "quizogram_backend/internals/features/users/profile/model"
)

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db := testdb.Open(t)

	user, err := Register(db, authDTO.RegisterRequest{
		UserName: "budi",
		Email:    "Budi@Example.com",
		Password: "rahasia-banget",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "budi@example.com" {
		t.Fatalf("email harus dinormalisasi lowercase: %q", user.Email)
	}

	var profile profileModel.UserProfileModel
	if err := db.First(&profile, "user_id = ?", user.ID).Error; err != nil {
		t.Fatalf("profile tidak ikut dibuat: %v", err)
	}
	if profile.AvatarKey != profileModel.DefaultAvatarKey {
		t.Fatalf("avatar_key = %q, want default", profile.AvatarKey)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	db := testdb.Open(t)

	base := authDTO.RegisterRequest{
		UserName: "budi",
		Email:    "budi@example.com",
		Password: "rahasia-banget",
	}
	if _, err := Register(db, base); err != nil {
		t.Fatalf("register pertama: %v", err)
	}

	// Username sama
	dup := base
	dup.Email = "lain@example.com"
	_, err := Register(db, dup)
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("username duplikat: err = %v, want 409", err)
	}

	// Email sama
	dup = base
	dup.UserName = "lain"
	_, err = Register(db, dup)
	fe, ok = err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("email duplikat: err = %v, want 409", err)
	}
}

func TestLoginByUserNameOrEmail(t *testing.T) {
	db := testdb.Open(t)

	if _, err := Register(db, authDTO.RegisterRequest{
		UserName: "budi",
		Email:    "budi@example.com",
		Password: "rahasia-banget",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := Login(db, authDTO.LoginRequest{Identifier: "budi", Password: "rahasia-banget"}); err != nil {
		t.Fatalf("login by username: %v", err)
	}
	if _, err := Login(db, authDTO.LoginRequest{Identifier: "Budi@Example.com", Password: "rahasia-banget"}); err != nil {
		t.Fatalf("login by email: %v", err)
	}

	_, err := Login(db, authDTO.LoginRequest{Identifier: "budi", Password: "salah"})
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("password salah: err = %v, want 401", err)
	}

	_, err = Login(db, authDTO.LoginRequest{Identifier: "ghost", Password: "apapun"})
	fe, ok = err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("user tidak ada: err = %v, want 401", err)
	}
}

func TestIssueAccessTokenClaims(t *testing.T) {
	db := testdb.Open(t)
	configs.JWTSecret = "test-secret"

	user, err := Register(db, authDTO.RegisterRequest{
		UserName: "budi",
		Email:    "budi@example.com",
		Password: "rahasia-banget",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	signed, _, err := IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token tidak valid: %v", err)
	}
	if claims["sub"] != "budi" {
		t.Fatalf("sub = %v, want budi", claims["sub"])
	}
	if claims["user_id"] != user.ID.String() {
		t.Fatalf("user_id = %v, want %s", claims["user_id"], user.ID)
	}
}

func TestLogoutBlacklistsAndIsIdempotent(t *testing.T) {
	db := testdb.Open(t)
	configs.JWTSecret = "test-secret"

	user, err := Register(db, authDTO.RegisterRequest{
		UserName: "budi",
		Email:    "budi@example.com",
		Password: "rahasia-banget",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	signed, _, err := IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	if err := Logout(db, signed); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := Logout(db, signed); err != nil {
		t.Fatalf("Logout kedua harus no-op: %v", err)
	}

	var n int64
	if err := db.Model(&authModel.TokenBlacklistModel{}).
		Where("token = ?", signed).Count(&n).Error; err != nil {
		t.Fatalf("count blacklist: %v", err)
	}
	if n != 1 {
		t.Fatalf("blacklist = %d, want 1", n)
	}

	if err := Logout(db, ""); err == nil {
		t.Fatalf("logout tanpa token harus error")
	}
}
