package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envPollEnabled  = "POLL_ENABLED"
	envPollInterval = "POLL_INTERVAL"

	envAPIFootballBaseURL = "APIFOOTBALL_BASE_URL"
	envAPIFootballKey     = "APIFOOTBALL_KEY"
	envNewsBaseURL        = "NEWSAPI_BASE_URL"
	envNewsKey            = "NEWSAPI_KEY"
	envNewsQuery          = "NEWS_QUERY"
	envNewsLanguage       = "NEWS_LANGUAGE"
	envNewsPageSize       = "NEWS_PAGE_SIZE"

	envRevalidateStandings = "REVALIDATE_STANDINGS"
	envRevalidateTeams     = "REVALIDATE_TEAMS"
	envRevalidateNews      = "REVALIDATE_NEWS"
	envRevalidationSecret  = "REVALIDATION_SECRET"
	envAdminToken          = "ADMIN_TOKEN"

	envCacheBackend  = "CACHE_BACKEND"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
	envRedisTLS      = "REDIS_TLS"
	envCachePrefix   = "CACHE_KEY_PREFIX"

	envUpstreamMinInterval = "UPSTREAM_MIN_INTERVAL"
	envRetryAttempts       = "RETRY_ATTEMPTS"
	envRetryBackoff        = "RETRY_BACKOFF"
	envBreakerMaxFailures  = "BREAKER_MAX_FAILURES"
	envBreakerOpenTimeout  = "BREAKER_OPEN_TIMEOUT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultPort     = "4000"
	defaultProvider = "apifootball"
	// Warmup cadence; standings change at most a few times a day.
	defaultPollInterval = 10 * Duration(time.Minute)

	defaultAPIFootballBaseURL = "https://apiv3.apifootball.com/"
	defaultNewsBaseURL        = "https://newsapi.org/v2"
	defaultNewsQuery          = "SuperLiga"
	defaultNewsLanguage       = "ro"
	defaultNewsPageSize       = 20

	defaultRevalidateStandings = 3600 * Duration(time.Second)
	defaultRevalidateTeams     = 3600 * Duration(time.Second)
	defaultRevalidateNews      = 1800 * Duration(time.Second)

	defaultCacheBackend = "memory"
	defaultRedisAddr    = "localhost:6379"
	defaultCachePrefix  = "superliga"

	defaultRetryAttempts      = 3
	defaultRetryBackoff       = 200 * Duration(time.Millisecond)
	defaultBreakerMaxFailures = 5
	defaultBreakerOpenTimeout = 30 * Duration(time.Second)

	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultMetricsPort = "9090"
	defaultServiceName = "superliga-data-service"
)
