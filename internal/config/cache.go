package config

import "strconv"

// RevalidationConfig holds cache windows and the secrets guarding invalidation.
type RevalidationConfig struct {
	Secret     string
	AdminToken string
	Standings  Duration
	Teams      Duration
	News       Duration
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string // memory | redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTLS      bool
	KeyPrefix     string
}

func loadRevalidation(src source) RevalidationConfig {
	return RevalidationConfig{
		Secret:     src.envOrDefault(envRevalidationSecret, ""),
		AdminToken: src.envOrDefault(envAdminToken, ""),
		Standings:  src.secondsEnvOrDefault(envRevalidateStandings, defaultRevalidateStandings),
		Teams:      src.secondsEnvOrDefault(envRevalidateTeams, defaultRevalidateTeams),
		News:       src.secondsEnvOrDefault(envRevalidateNews, defaultRevalidateNews),
	}
}

func loadCache(src source) CacheConfig {
	db := 0
	if raw := src.lookup(envRedisDB); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			db = parsed
		}
	}
	return CacheConfig{
		Backend:       src.envOrDefault(envCacheBackend, defaultCacheBackend),
		RedisAddr:     src.envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword: src.envOrDefault(envRedisPassword, ""),
		RedisDB:       db,
		RedisTLS:      src.boolEnvOrDefault(envRedisTLS, false),
		KeyPrefix:     src.envOrDefault(envCachePrefix, defaultCachePrefix),
	}
}
