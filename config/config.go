package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host           string
	Port           string
	AllowedOrigins []string
	RateLimit      int // requests per minute per client IP, 0 disables
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	host := os.Getenv("HOST")
	if host == "" {
		host = "0.0.0.0" // all interfaces
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000" // default port
	}
	if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", port)
	}

	origins := []string{"*"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	rateLimit := 120
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		rateLimit, err = strconv.Atoi(v)
		if err != nil || rateLimit < 0 {
			return nil, fmt.Errorf("RATE_LIMIT must be a non-negative integer, got %q", v)
		}
	}

	return &Config{
		Host:           host,
		Port:           port,
		AllowedOrigins: origins,
		RateLimit:      rateLimit,
	}, nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
