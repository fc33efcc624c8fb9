package config

const (
	// AppID is the reverse-domain identifier used to derive per-user directories.
	AppID = "com.webspence.kd"

	defaultConfigFileName  = "config.toml"
	defaultEnvFileName     = ".env"
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
	defaultKRWPerUSD       = 1303.74
	defaultSuggestionLimit = 5
)

// Default returns a Config populated with repository defaults. Directory
// fields are resolved during Load.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
		},
		Currency: Currency{
			KRWPerUSD: defaultKRWPerUSD,
		},
		Prompt: Prompt{
			SuggestionLimit: defaultSuggestionLimit,
		},
	}
}
