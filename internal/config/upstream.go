package config

// APIFootballConfig controls how we talk to the apifootball API.
type APIFootballConfig struct {
	BaseURL string
	APIKey  string
}

// NewsConfig controls the newsapi.org search.
type NewsConfig struct {
	BaseURL  string
	APIKey   string
	Query    string
	Language string
	PageSize int
}

// UpstreamConfig tunes the shared provider wrappers (rate limit, retry, circuit breaker).
type UpstreamConfig struct {
	MinInterval        Duration
	RetryAttempts      int
	RetryBackoff       Duration
	BreakerMaxFailures int
	BreakerOpenTimeout Duration
}

func loadAPIFootball(src source) APIFootballConfig {
	return APIFootballConfig{
		BaseURL: src.envOrDefault(envAPIFootballBaseURL, defaultAPIFootballBaseURL),
		APIKey:  src.envOrDefault(envAPIFootballKey, ""),
	}
}

func loadNews(src source) NewsConfig {
	return NewsConfig{
		BaseURL:  src.envOrDefault(envNewsBaseURL, defaultNewsBaseURL),
		APIKey:   src.envOrDefault(envNewsKey, ""),
		Query:    src.envOrDefault(envNewsQuery, defaultNewsQuery),
		Language: src.envOrDefault(envNewsLanguage, defaultNewsLanguage),
		PageSize: src.intEnvOrDefault(envNewsPageSize, defaultNewsPageSize),
	}
}

func loadUpstream(src source) UpstreamConfig {
	return UpstreamConfig{
		MinInterval:        src.durationEnvOrDefault(envUpstreamMinInterval, 0),
		RetryAttempts:      src.intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:       src.durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		BreakerMaxFailures: src.intEnvOrDefault(envBreakerMaxFailures, defaultBreakerMaxFailures),
		BreakerOpenTimeout: src.durationEnvOrDefault(envBreakerOpenTimeout, defaultBreakerOpenTimeout),
	}
}
