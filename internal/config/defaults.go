package config

const (
	defaultDataDir  = "~/.local/share/shellac"
	defaultCacheDir = "~/.cache/shellac/releases"
	defaultLogDir   = "~/.local/share/shellac/logs"

	defaultDiscogsBaseURL = "https://api.discogs.com"
	// Discogs asks clients to disclose themselves and their request rate.
	defaultDiscogsUserAgent = "shellac/1.0 community data supplement capped at 5 reqs/min (+https://github.com/burntable/shellac)"
	defaultDiscogsTimeout   = 30

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:  defaultDataDir,
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		Discogs: Discogs{
			BaseURL:        defaultDiscogsBaseURL,
			UserAgent:      defaultDiscogsUserAgent,
			TimeoutSeconds: defaultDiscogsTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
