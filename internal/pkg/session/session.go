package session

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/cache"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/env"
)

const (
	sessionExpiration = time.Hour * 1
	sessionKeyLookup  = "cookie:session_id"
)

var sessionStore *session.Store

// NewSessionStore creates the session store from configuration.
// SESSION_STORAGE=memory keeps sessions in process, everything else uses Redis.
func NewSessionStore() *session.Store {
	if env.GetEnv("SESSION_STORAGE", "redis") == "memory" {
		return NewMemorySessionStore()
	}

	settings := cache.GetSettings()

	// Sessions live in Redis database 1, apart from anything else on DB 0
	storage := redis.New(redis.Config{
		Host:     settings.Host,
		Port:     settings.Port,
		Password: settings.Password,
		Database: 1,
		Reset:    false,
	})

	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		CookieSameSite: "Lax",
		Expiration:     sessionExpiration,
		KeyLookup:      sessionKeyLookup,
	})

	return sessionStore
}

// NewMemorySessionStore creates an in-process session store
func NewMemorySessionStore() *session.Store {
	sessionStore = session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     sessionExpiration,
		KeyLookup:      sessionKeyLookup,
	})
	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}
