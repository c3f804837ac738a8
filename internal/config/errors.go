package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrAdminUsernameEmpty error if config admin.username is empty.
	ErrAdminUsernameEmpty = errors.New("config admin.username can not be empty")

	// ErrUploadsDirEmpty error if config uploads.dir is empty.
	ErrUploadsDirEmpty = errors.New("config uploads.dir can not be empty")
)
