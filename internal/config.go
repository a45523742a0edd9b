package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true" validate:"required"`
	EventsFilepath  string        `env:"EVENTS_FILEPATH,required=true" validate:"required"`
	SourceName      string        `env:"SOURCE_NAME,default=pns" validate:"required,alphanum"`
	LogLevel        string        `env:"LOG_LEVEL,required=true" validate:"oneof=DEBUG INFO WARN ERROR"`
	PruneOnAllPaths bool          `env:"PRUNE_ON_ALL_PATHS,default=false"`
	DomainCacheSize int           `env:"DOMAIN_CACHE_SIZE,default=4096" validate:"min=1"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true" validate:"gt=0"`
	MaxRestarts     int           `env:"MAX_RESTARTS,default=5" validate:"min=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,required=true" validate:"gt=0"`
	Host            string        `env:"HOST,required=true" validate:"required"`
	DebugPort       int           `env:"DEBUG_PORT,required=true" validate:"min=1,max=65535"`
	GrpcPort        int           `env:"GRPC_PORT,required=true" validate:"min=1,max=65535,nefield=DebugPort"`
}

// LoadConfig reads the optional .env file, then the environment, then checks the values.
func LoadConfig(envFiles ...string) (Config, error) {
	// A missing .env file is fine: the environment alone may carry everything.
	_ = godotenv.Load(envFiles...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
