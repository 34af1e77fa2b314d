package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Whois  WhoisConfig
	JWT    JWTConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	Name    string
	SSLMode string
	DSN     string
}

// Enabled reports whether a lookup-history sink was configured.
// The sink is optional: without it lookups still work, they just are not recorded.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

type WhoisConfig struct {
	// APIKey may be empty; the service reports a configuration error per
	// request rather than refusing to start.
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	SecretKey            string
	AccessTokenExpiresIn time.Duration
}

type AdminConfig struct {
	Username     string
	PasswordHash string
}

const defaultWhoisAPIURL = "https://www.whoisxmlapi.com/whoisserver/WhoisService"

func LoadConfig() (*Config, error) {
	dbConfig := DBConfig{
		Host:    os.Getenv("DB_HOST"),
		User:    os.Getenv("DB_USER"),
		Pass:    os.Getenv("DB_PASS"),
		Name:    os.Getenv("DB_NAME"),
		SSLMode: os.Getenv("DB_SSLMODE"),
	}
	if dbConfig.Enabled() {
		dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %v", err)
		}
		dbConfig.Port = dbPort
		dbConfig.DSN = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dbConfig.Host, dbConfig.Port, dbConfig.User, dbConfig.Pass, dbConfig.Name, dbConfig.SSLMode,
		)
	}

	whoisConfig := WhoisConfig{
		APIKey:  os.Getenv("WHOIS_API_KEY"),
		BaseURL: os.Getenv("WHOIS_API_URL"),
		Timeout: 20 * time.Second,
	}
	if whoisConfig.BaseURL == "" {
		whoisConfig.BaseURL = defaultWhoisAPIURL
	}
	if raw := os.Getenv("WHOIS_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid WHOIS_TIMEOUT_SECONDS: %q", raw)
		}
		whoisConfig.Timeout = time.Duration(seconds) * time.Second
	}

	jwtConfig := JWTConfig{
		SecretKey:            os.Getenv("JWT_SECRET_KEY"),
		AccessTokenExpiresIn: time.Hour,
	}

	adminConfig := AdminConfig{
		Username:     os.Getenv("ADMIN_USERNAME"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	serverConfig := ServerConfig{
		Port:         os.Getenv("SERVER_PORT"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	if serverConfig.Port == "" {
		serverConfig.Port = "5000"
	}

	return &Config{
		Server: serverConfig,
		DB:     dbConfig,
		Whois:  whoisConfig,
		JWT:    jwtConfig,
		Admin:  adminConfig,
	}, nil
}
