package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Maps     MapsConfig
	Dispatch DispatchConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address    string
	AlertTopic string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MapsConfig contains Google Maps API configuration
type MapsConfig struct {
	APIKey string
}

// DispatchConfig contains the dispatch engine tunables.
//
// WorkloadWeight and DistanceWeight control the composite candidate score;
// NeutralDistanceScore is the distance sub-score used when either the trip
// pickup or the driver position is unknown. Their values are domain-specific
// and expected to change, so they are configuration rather than constants.
type DispatchConfig struct {
	WorkloadWeight       float64 `json:"workload_weight"`
	DistanceWeight       float64 `json:"distance_weight"`
	NeutralDistanceScore float64 `json:"neutral_distance_score"`
	BatchLimit           int     `json:"batch_limit"`
	IntervalSeconds      int     `json:"interval_seconds"`
	NearbyRadiusMiles    float64 `json:"nearby_radius_miles"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
