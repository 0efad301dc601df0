package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/config"
	"github.com/nandini9934/MyApi/routes"
	"github.com/nandini9934/MyApi/utils"
)

type stubMailer struct {
	welcomes []string
	resets   []string
}

func (m *stubMailer) SendWelcomeEmail(to, name string) error {
	m.welcomes = append(m.welcomes, to)
	return nil
}

func (m *stubMailer) SendResetEmail(to, name, token string) error {
	m.resets = append(m.resets, to)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *stubMailer) {
	t.Helper()
	t.Setenv("GGP_SECRET_KEY", "test-secret")
	t.Setenv("FRONTEND_URL", "http://localhost:3000")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mailer := &stubMailer{}
	return routes.SetupRouter(db, mailer, nil), db, mailer
}

func nutritionistToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := utils.GenerateJWT(id, "nutritionist")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func userToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := utils.GenerateJWT(id, "user")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
