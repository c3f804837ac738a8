package home

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// recordingViews captures the view model handed to Render.
type recordingViews struct {
	data fiber.Map
}

func (*recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		v.data = m
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func newTestService(t *testing.T) (*fiber.App, *gorm.DB, *recordingViews) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Skill{},
		&models.Service{},
		&models.Project{},
		&models.Experience{},
		&models.Certification{},
		&models.Setting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	var s Service
	if err := s.Init(app, &config.Config{Title: "Test"}, db); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	return app, db, views
}

func TestGetRendersIndexWithAllCollections(t *testing.T) {
	app, db, views := newTestService(t)

	seeds := []interface{}{
		&models.Skill{Category: "Languages", Name: "Go", OrderNum: 1},
		&models.Skill{Category: "Languages", Name: "SQL", OrderNum: 2},
		&models.Skill{Category: "Tools", Name: "Docker", OrderNum: 1},
		&models.Service{Title: "Consulting", Description: "Advice."},
		&models.Project{Title: "Tracker", Description: "A tracker."},
		&models.Experience{Organization: "Example Corp", Description: "Work."},
		&models.Certification{Title: "Cloud Practitioner"},
		&models.Setting{Key: "profile_name", Value: "Jane Doe"},
		&models.Setting{Key: "profile_email", Value: "jane@example.com"},
	}
	for _, seed := range seeds {
		if err := db.Create(seed).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != TemplateName {
		t.Fatalf("expected index template render, got %q", body)
	}

	profile, ok := views.data["Profile"].(Profile)
	if !ok {
		t.Fatalf("expected Profile in view model, got %T", views.data["Profile"])
	}

	if profile.Name != "Jane Doe" || profile.Email != "jane@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	categories, ok := views.data["SkillCategories"].([]string)
	if !ok || len(categories) != 2 {
		t.Fatalf("expected two skill categories, got %v", views.data["SkillCategories"])
	}

	grouped, ok := views.data["Skills"].(map[string][]string)
	if !ok {
		t.Fatalf("expected grouped skills, got %T", views.data["Skills"])
	}

	if len(grouped["Languages"]) != 2 || grouped["Languages"][0] != "Go" {
		t.Fatalf("unexpected grouped skills: %v", grouped)
	}
}

func TestGetMissingSettingsFallBackToEmpty(t *testing.T) {
	app, _, views := newTestService(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with empty database, got %d", resp.StatusCode)
	}

	profile := views.data["Profile"].(Profile)
	if profile.Name != "" || profile.Email != "" {
		t.Fatalf("expected empty profile fallbacks, got %+v", profile)
	}
}
