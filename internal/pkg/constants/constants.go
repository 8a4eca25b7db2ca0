package constants

// Viper configuration keys. With AutomaticEnv enabled each key maps to its
// uppercased environment variable, e.g. doffin_api_key -> DOFFIN_API_KEY.
const (
	ViperLogLevel      = "log_level"
	ViperServerAddr    = "server_addr"
	ViperCORSOrigins   = "cors_origins"
	ViperDoffinAPIKey  = "doffin_api_key"
	ViperDoffinBaseURL = "doffin_base_url"
	ViperDoffinTimeout = "doffin_timeout"
	ViperKlassBaseURL  = "klass_base_url"
	ViperKlassTimeout  = "klass_timeout"
	ViperKlassCacheTTL = "klass_cache_ttl"
)

// External service names used in error details and logging.
const (
	ServiceSSB    = "SSB"
	ServiceDoffin = "Doffin"
)
