package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool
}

// LogFile implements a file based logger with rotation.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	AccessLog string `toml:"access"`
	InfoLog   string `toml:"info"`
	WarnLog   string `toml:"warn"`
	ErrorLog  string `toml:"error"`
	TraceLog  string `toml:"trace"`

	// Rotation settings shared by all files.
	MaxSize    int `toml:"maxSize"`
	MaxBackups int `toml:"maxBackups"`
	MaxAge     int `toml:"maxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string // info, warn, error.

	// EnableAccessLogToConsole if true the web service logs requests to console.
	// Does not overrule flag Console.Enabled!
	// If Console.Enabled is false, still no access log output to the console will be shown.
	EnableAccessLogToConsole bool
	ReportCaller             bool

	AppName     string
	ServiceName string

	// Console used mainly for docker and dev.
	Console Console

	// File logging for non docker environments.
	File LogFile `toml:"file"`
}
