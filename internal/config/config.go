// Package config handles input from etc/main.toml and GOFOLIO_* environment variables.
package config

import (
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/logger"
)

const (
	envPrefix = "GOFOLIO"

	defaultUploadMaxSize = 16 << 20 // 16 MiB
	defaultShutDownTime  = 5        // seconds
)

// ReadConfig reads the configuration from the given directory (default ./etc),
// applying GOFOLIO_* environment variable overrides on top of the file values
// and falling back to built-in defaults. The admin password is hashed here;
// the plaintext never leaves this function.
func ReadConfig(path string) (Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = "./etc"
	}

	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	// a missing config file is fine, env and defaults still apply
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	passwordHash, err := argon2id.CreateHash(v.GetString("admin.password"), argon2id.DefaultParams)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to hash admin password")
	}

	c := Config{
		DevMode: v.GetBool("devmode"),
		Title:   v.GetString("title"),
		DB: DB{
			Path: v.GetString("db.path"),
		},
		Webserver: Webserver{
			Port:         v.GetInt("webserver.port"),
			ShutDownTime: v.GetInt("webserver.shutdowntime"),
			Session: Session{
				ExpiryTime: v.GetDuration("webserver.session.expiry"),
			},
		},
		Admin: Admin{
			Username:     v.GetString("admin.username"),
			PasswordHash: passwordHash,
		},
		Uploads: Uploads{
			Dir:     v.GetString("uploads.dir"),
			MaxSize: v.GetInt("uploads.maxsize"),
		},
		Log: logger.Log{
			LogLevel:                 v.GetString("log.level"),
			AppName:                  v.GetString("log.appname"),
			ServiceName:              v.GetString("log.servicename"),
			ReportCaller:             v.GetBool("log.reportcaller"),
			EnableAccessLogToConsole: v.GetBool("log.accesstoconsole"),
			Console: logger.Console{
				Enabled:          v.GetBool("log.console.enabled"),
				UseConsoleWriter: v.GetBool("log.console.pretty"),
			},
			File: logger.LogFile{
				Enabled:    v.GetBool("log.file.enabled"),
				Path:       v.GetString("log.file.path"),
				AccessLog:  v.GetString("log.file.access"),
				InfoLog:    v.GetString("log.file.info"),
				WarnLog:    v.GetString("log.file.warn"),
				ErrorLog:   v.GetString("log.file.error"),
				TraceLog:   v.GetString("log.file.trace"),
				MaxSize:    v.GetInt("log.file.maxsize"),
				MaxBackups: v.GetInt("log.file.maxbackups"),
				MaxAge:     v.GetInt("log.file.maxage"),
			},
		},
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "GoFolio-Admin")
	v.SetDefault("devmode", false)

	v.SetDefault("webserver.port", 8080)
	v.SetDefault("webserver.shutdowntime", defaultShutDownTime)
	v.SetDefault("webserver.session.expiry", "24h")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")

	v.SetDefault("uploads.dir", "uploads")
	v.SetDefault("uploads.maxsize", defaultUploadMaxSize)

	v.SetDefault("db.path", "database.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.appname", "gofolio")
	v.SetDefault("log.servicename", "gofolio-admin")
	v.SetDefault("log.accesstoconsole", true)
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.pretty", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "log")
	v.SetDefault("log.file.access", "access.log")
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.warn", "warn.log")
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.trace", "trace.log")
	v.SetDefault("log.file.maxsize", 100)
	v.SetDefault("log.file.maxbackups", 3)
	v.SetDefault("log.file.maxage", 28)
}

// validate minimal config settings for the web service.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Admin.Username == "" {
		return errors.Wrap(ErrAdminUsernameEmpty, invalidErrMessage)
	}

	if c.Uploads.Dir == "" {
		return errors.Wrap(ErrUploadsDirEmpty, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Uploads.MaxSize == 0 {
		c.Uploads.MaxSize = defaultUploadMaxSize
	}

	return nil
}
