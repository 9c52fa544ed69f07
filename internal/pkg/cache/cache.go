package cache

import (
	"context"
	"log"
	"net"
	"strconv"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/env"
	"github.com/redis/go-redis/v9"
)

// Settings is the Redis connection configuration shared by the startup
// check and the session storage
type Settings struct {
	Host     string
	Port     int
	Password string
}

// GetSettings reads CACHE_HOST, CACHE_PORT and CACHE_PASSWORD
func GetSettings() Settings {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}

	return Settings{
		Host:     env.GetEnv("CACHE_HOST", "localhost"),
		Port:     port,
		Password: env.GetEnv("CACHE_PASSWORD", ""),
	}
}

// Addr returns host:port
func (s Settings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SetupCache connects to Redis and logs whether it is reachable. The blog
// caches nothing; sessions are stored there through their own connection
// built from the same Settings.
func SetupCache() {
	settings := GetSettings()

	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr(),
		Password: settings.Password,
		DB:       0,
	})

	// Test the connection
	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to Redis: %v", err)
	} else {
		log.Printf("Successfully connected to Redis: %s", pong)
	}
	_ = client.Close()
}
