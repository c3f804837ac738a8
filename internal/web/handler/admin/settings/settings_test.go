package settings

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/setting"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

func newTestService(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("failed to migrate setting model: %v", err)
	}

	seed := []models.Setting{
		{Key: "profile_name", Value: "Jane Doe"},
		{Key: "profile_title", Value: "Engineer"},
		{Key: "profile_email", Value: "jane@example.com"},
		{Key: "profile_image", Value: "uploads/profile.jpg"},
		{Key: "resume_path", Value: "uploads/resume.pdf"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed setting: %v", err)
		}
	}

	cfg := &config.Config{
		Uploads: config.Uploads{Dir: t.TempDir(), MaxSize: 1 << 20},
	}

	app := fiber.New(fiber.Config{BodyLimit: cfg.Uploads.MaxSize})

	var s Service
	if err := s.Init(app, cfg, db); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	return app, db, cfg
}

func performMultipart(t *testing.T, app *fiber.App, fields map[string]string, fileField, filename string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}

	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}

		if _, err := fw.Write([]byte("file content")); err != nil {
			t.Fatalf("failed to write file content: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, Path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestUpdateChangesSubmittedTextSettings(t *testing.T) {
	app, db, _ := newTestService(t)

	resp := performMultipart(t, app, map[string]string{
		"profile_name":  "  John Smith  ",
		"profile_title": "Architect",
	}, "", "")

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	// the update is visible on the very next read
	if got := setting.GetValue(db, "profile_name", ""); got != "John Smith" {
		t.Fatalf("expected updated profile_name, got %q", got)
	}

	if got := setting.GetValue(db, "profile_title", ""); got != "Architect" {
		t.Fatalf("expected updated profile_title, got %q", got)
	}

	// untouched keys keep their value
	if got := setting.GetValue(db, "profile_email", ""); got != "jane@example.com" {
		t.Fatalf("expected unchanged profile_email, got %q", got)
	}
}

func TestUpdateSkipsEmptyFields(t *testing.T) {
	app, db, _ := newTestService(t)

	resp := performMultipart(t, app, map[string]string{
		"profile_name":  "   ",
		"profile_title": "Architect",
	}, "", "")

	defer func() {
		_ = resp.Body.Close()
	}()

	if got := setting.GetValue(db, "profile_name", ""); got != "Jane Doe" {
		t.Fatalf("expected unchanged profile_name, got %q", got)
	}
}

func TestProfileImageUploadUsesFixedName(t *testing.T) {
	app, db, cfg := newTestService(t)

	resp := performMultipart(t, app, nil, "profile_image", "My Face.PNG")

	defer func() {
		_ = resp.Body.Close()
	}()

	stored := setting.GetValue(db, "profile_image", "")
	if filepath.Base(stored) != "profile.png" {
		t.Fatalf("expected fixed profile filename, got %q", stored)
	}

	if _, err := os.Stat(filepath.Join(cfg.Uploads.Dir, "profile.png")); err != nil {
		t.Fatalf("expected uploaded file on disk: %v", err)
	}
}

func TestResumeUploadOverwritesPreviousFile(t *testing.T) {
	app, db, cfg := newTestService(t)

	for i := 0; i < 2; i++ {
		resp := performMultipart(t, app, nil, "resume", "CV Final v2.pdf")
		_ = resp.Body.Close()
	}

	stored := setting.GetValue(db, "resume_path", "")
	if filepath.Base(stored) != "resume.pdf" {
		t.Fatalf("expected fixed resume filename, got %q", stored)
	}

	entries, err := os.ReadDir(cfg.Uploads.Dir)
	if err != nil {
		t.Fatalf("failed to read uploads dir: %v", err)
	}

	// repeated uploads land on the same file
	if len(entries) != 1 {
		t.Fatalf("expected a single resume file, got %d entries", len(entries))
	}
}

func TestDisallowedUploadExtensionIsIgnored(t *testing.T) {
	app, db, cfg := newTestService(t)

	resp := performMultipart(t, app, nil, "profile_image", "avatar.svg")

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	if got := setting.GetValue(db, "profile_image", ""); got != "uploads/profile.jpg" {
		t.Fatalf("expected unchanged profile_image, got %q", got)
	}

	entries, err := os.ReadDir(cfg.Uploads.Dir)
	if err != nil {
		t.Fatalf("failed to read uploads dir: %v", err)
	}

	if len(entries) != 0 {
		t.Fatalf("expected no files in uploads dir, got %d", len(entries))
	}
}
