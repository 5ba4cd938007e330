package config

import "os"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Provider     string
	PollEnabled  bool
	PollInterval Duration
	APIFootball  APIFootballConfig
	News         NewsConfig
	Revalidation RevalidationConfig
	Cache        CacheConfig
	Upstream     UpstreamConfig
	Metrics      MetricsConfig
	Logging      LoggingConfig
}

// Load reads configuration from the environment, layered over the YAML file named by CONFIG_FILE.
func Load() (Config, error) {
	return LoadFile(os.Getenv(envConfigFile))
}

// LoadFile reads configuration using the given YAML file (may be empty) beneath environment variables.
func LoadFile(path string) (Config, error) {
	src, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Port:         src.envOrDefault(envPort, defaultPort),
		Provider:     src.envOrDefault(envProvider, defaultProvider),
		PollEnabled:  src.boolEnvOrDefault(envPollEnabled, true),
		PollInterval: src.durationEnvOrDefault(envPollInterval, defaultPollInterval),
		APIFootball:  loadAPIFootball(src),
		News:         loadNews(src),
		Revalidation: loadRevalidation(src),
		Cache:        loadCache(src),
		Upstream:     loadUpstream(src),
		Metrics:      loadMetrics(src),
		Logging:      loadLogging(src),
	}, nil
}
