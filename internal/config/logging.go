package config

// LoggingConfig selects the log level and handler format.
type LoggingConfig struct {
	Level  string
	Format string // text | json
}

func loadLogging(src source) LoggingConfig {
	return LoggingConfig{
		Level:  src.envOrDefault(envLogLevel, defaultLogLevel),
		Format: src.envOrDefault(envLogFormat, defaultLogFormat),
	}
}
