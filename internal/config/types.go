package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int           `yaml:"port"`
	Env            string        `yaml:"env"` // "development" | "production"
	JWTSecret      string        `yaml:"jwt_secret"`
	SessionTTLHrs  int           `yaml:"session_ttl_hours"`
	// AllowedOrigins entries are exact hosts or "*.domain" wildcards.
	AllowedOrigins []string      `yaml:"allowed_origins"`
	RedisURL       string        `yaml:"redis_url"`
	Admin          AdminConfig   `yaml:"admin"`
	Markets        MarketsConfig `yaml:"markets"`
	Paths          PathsConfig   `yaml:"paths"`
}

// AdminConfig is the single admin credential pair. PasswordHash wins when
// both it and Password are set; a plaintext Password is hashed at load.
type AdminConfig struct {
	Email        string `yaml:"email"`
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// MarketsConfig selects the market-data source.
type MarketsConfig struct {
	Source       string `yaml:"source"` // "static" | "http" | "db"
	BaseURL      string `yaml:"base_url"`
	DSN          string `yaml:"dsn"` // MySQL DSN for source=db
	CacheTTLSecs int    `yaml:"cache_ttl_seconds"`
}

// PathsConfig holds filesystem locations.
type PathsConfig struct {
	Static string `yaml:"static"`
}
