package config

const (
	defaultLogDir       = ""
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultOutputFormat = "json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Pretty: false,
			Format: defaultOutputFormat,
		},
	}
}
