// file: internals/features/quizzes/quiz/controller/quiz_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizogram_backend/internals/databases/testdb"
	qmodel "quizogram_backend/internals/features/quizzes/quiz/model"
	userModel "quizogram_backend/internals/features/users/user/model"
)

// newTestApp memasang routes quiz dengan auth palsu yang menaruh user_id di Locals.
func newTestApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})

	ctrl := NewQuizController(db)
	app.Post("/quizzes", ctrl.Create)
	app.Get("/quizzes/mine", ctrl.Mine)
	app.Get("/quizzes", ctrl.List)
	app.Get("/quizzes/:id", ctrl.GetByID)
	app.Patch("/quizzes/:id", ctrl.Patch)
	app.Delete("/quizzes/:id", ctrl.Delete)
	return app
}

func seedTestUser(t *testing.T, db *gorm.DB, name string) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserName: name,
		Email:    name + "@example.com",
		Password: "x",
		IsActive: true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func validCreatePayload() map[string]any {
	return map[string]any{
		"title": "Ibukota Dunia",
		"tags":  []string{"geografi"},
		"questions": []map[string]any{
			{
				"text":                 "Ibukota Prancis?",
				"correct_option_index": 1,
				"options": []map[string]any{
					{"text": "London"},
					{"text": "Paris"},
				},
			},
		},
	}
}

func TestCreateQuizPersistsTree(t *testing.T) {
	db := testdb.Open(t)
	user := seedTestUser(t, db, "budi")
	app := newTestApp(db, user.ID)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/quizzes", validCreatePayload()))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var quizzes []qmodel.QuizModel
	if err := db.Preload("Questions.Options").Find(&quizzes).Error; err != nil {
		t.Fatalf("load quizzes: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("quizzes = %d, want 1", len(quizzes))
	}
	if quizzes[0].QuizOwnerUserID != user.ID {
		t.Fatalf("owner salah: %s", quizzes[0].QuizOwnerUserID)
	}
	if len(quizzes[0].Questions) != 1 || len(quizzes[0].Questions[0].Options) != 2 {
		t.Fatalf("pohon quiz tidak lengkap: %+v", quizzes[0])
	}
}

func TestCreateQuizCorrectIndexOutOfRange(t *testing.T) {
	db := testdb.Open(t)
	user := seedTestUser(t, db, "budi")
	app := newTestApp(db, user.ID)

	payload := validCreatePayload()
	payload["questions"].([]map[string]any)[0]["correct_option_index"] = 2

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/quizzes", payload))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	// Gagal validasi = tidak ada satu row pun tersimpan.
	var n int64
	if err := db.Model(&qmodel.QuizModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count quizzes: %v", err)
	}
	if n != 0 {
		t.Fatalf("quizzes = %d, want 0", n)
	}
}

func TestPatchQuizOwnerOnly(t *testing.T) {
	db := testdb.Open(t)
	owner := seedTestUser(t, db, "owner")
	intruder := seedTestUser(t, db, "intruder")

	ownerApp := newTestApp(db, owner.ID)
	resp, err := ownerApp.Test(jsonRequest(t, http.MethodPost, "/quizzes", validCreatePayload()))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	var quiz qmodel.QuizModel
	if err := db.First(&quiz).Error; err != nil {
		t.Fatalf("load quiz: %v", err)
	}

	patch := map[string]any{"title": "Judul Baru"}

	intruderApp := newTestApp(db, intruder.ID)
	resp, err = intruderApp.Test(jsonRequest(t, http.MethodPatch, "/quizzes/"+quiz.QuizID.String(), patch))
	if err != nil {
		t.Fatalf("patch intruder: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("intruder status = %d, want 403", resp.StatusCode)
	}

	resp, err = ownerApp.Test(jsonRequest(t, http.MethodPatch, "/quizzes/"+quiz.QuizID.String(), patch))
	if err != nil {
		t.Fatalf("patch owner: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("owner status = %d, want 200", resp.StatusCode)
	}

	if err := db.First(&quiz, "quiz_id = ?", quiz.QuizID).Error; err != nil {
		t.Fatalf("reload quiz: %v", err)
	}
	if quiz.QuizTitle != "Judul Baru" {
		t.Fatalf("title = %q, want Judul Baru", quiz.QuizTitle)
	}
}

func TestDeleteQuizNotFoundAndOwnerGate(t *testing.T) {
	db := testdb.Open(t)
	owner := seedTestUser(t, db, "owner")
	app := newTestApp(db, owner.ID)

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/quizzes/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/quizzes", validCreatePayload()))
	if err != nil || resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: %v status=%d", err, resp.StatusCode)
	}
	var quiz qmodel.QuizModel
	if err := db.First(&quiz).Error; err != nil {
		t.Fatalf("load quiz: %v", err)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/quizzes/"+quiz.QuizID.String(), nil))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var n int64
	if err := db.Model(&qmodel.QuizModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("quiz masih ada setelah delete")
	}
}
