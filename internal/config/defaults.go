package config

const (
	defaultLogDir        = "~/.local/share/stylometry/logs"
	defaultAuthor        = "Unknown"
	defaultPrecision     = 4
	defaultWorkers       = 1
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultCacheFileName = "features.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			CachePath: defaultCachePath(),
		},
		Extraction: Extraction{
			DefaultAuthor: defaultAuthor,
		},
		Output: Output{
			Precision: defaultPrecision,
		},
		Corpus: Corpus{
			Workers: defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
