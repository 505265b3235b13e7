package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`

	JWT  JWT  `envPrefix:"JWT_"`
	Seed Seed `envPrefix:"SEED_"`
}

type JWT struct {
	Secret     string `env:"SECRET"`
	TTLMinutes int    `env:"TTL_MINUTES" envDefault:"1440"`
}

type Seed struct {
	// canonical admin address inserted into the allowlist at startup
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"admin@marketplace.local"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
