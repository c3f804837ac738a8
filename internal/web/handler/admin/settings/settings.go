// Package settings implements the admin settings update route,
// including the profile image and resume uploads.
package settings

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/controller/setting"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/upload"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/flash"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
)

// Path is the path of the settings update route.
const Path = handler.AdminPath + "/settings/update"

// profileTextKeys are the recognized profile text settings. Only keys
// present and non-empty in the submission are updated.
var profileTextKeys = []string{
	"profile_name",
	"profile_title",
	"profile_location",
	"profile_email",
	"profile_linkedin",
	"profile_summary",
}

// Service is the settings admin handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings admin handler.
var Handler = Service{}

// Init initializes the settings admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Post(Path, s.Update)

	return nil
}

// Update updates the submitted profile text settings and handles the
// profile image and resume uploads. Uploads use fixed destination
// filenames, so repeated uploads overwrite prior files.
func (s *Service) Update(c *fiber.Ctx) error {
	for _, key := range profileTextKeys {
		value := strings.TrimSpace(c.FormValue(key))
		if value == "" {
			continue
		}

		if err := setting.Update(s.db, key, value); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to update setting")
			return fiber.ErrInternalServerError
		}
	}

	s.saveUpload(c, "profile_image", "profile_image", func(filename string) string {
		return "profile" + upload.Ext(filename)
	})

	s.saveUpload(c, "resume", "resume_path", func(string) string {
		return "resume.pdf"
	})

	flash.Set(c, flash.LevelSuccess, "Settings updated successfully!")

	return c.Redirect(handler.AdminPath)
}

// saveUpload stores an uploaded file under a fixed destination name and
// points the given settings key at it. A missing file or a disallowed
// extension is a silent no-op.
func (s *Service) saveUpload(c *fiber.Ctx, field, settingKey string, destName func(string) string) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Filename == "" {
		return
	}

	if !upload.Allowed(fh.Filename) {
		log.Debug().Str("filename", fh.Filename).Str("field", field).Msg("rejected upload extension")
		return
	}

	stored, err := upload.Save(fh, s.cfg.Uploads.Dir, destName(fh.Filename))
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to save upload")
		return
	}

	if err := setting.Update(s.db, settingKey, stored); err != nil {
		log.Error().Err(err).Str("key", settingKey).Msg("failed to update setting")
	}
}
