package main

import (
	"time"

	"github.com/ruFelix/hesper/pkg/dao/mongostore"
	"github.com/ruFelix/hesper/pkg/dao/pgstore"
	"github.com/ruFelix/hesper/pkg/dao/redisstore"
	"github.com/ruFelix/hesper/pkg/httpserver"
)

type Config struct {
	AppEnv       string        `env:"APP_ENV" envDefault:"development"`
	ServiceName  string        `env:"SERVICE_NAME" envDefault:"hesperd"`
	FormsDir     string        `env:"FORMS_DIR" envDefault:"forms"`
	CacheSize    int           `env:"ENTITY_CACHE_SIZE" envDefault:"0"`   // CacheSize enables the in-process entity LRU when positive.
	CacheTTL     time.Duration `env:"ENTITY_CACHE_TTL" envDefault:"5m"`   // CacheTTL is the lifetime of Redis cache entries.
	RedisEnabled bool          `env:"REDIS_ENABLED" envDefault:"false"`
	MongoEnabled bool          `env:"MONGODB_ENABLED" envDefault:"false"`

	HTTP     httpserver.Config
	Postgres pgstore.Config
	Redis    redisstore.Config
	Mongo    mongostore.Config
}
