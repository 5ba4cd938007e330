package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(src source) MetricsConfig {
	return MetricsConfig{
		Enabled:      src.boolEnvOrDefault(envMetricsOn, true),
		Port:         src.envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: src.envOrDefault(envOtelEndpoint, ""),
		ServiceName:  src.envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: src.boolEnvOrDefault(envOtelInsecure, true),
	}
}
