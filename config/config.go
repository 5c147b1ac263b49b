package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME"      default:"resa"`
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Timezone string `envconfig:"TIMEZONE"  default:"Europe/Paris"`
	} `envconfig:"APP"`

	Form struct {
		// PhonePrefix is prepended to national phone numbers when the
		// reservation payload is finalized.
		PhonePrefix string `envconfig:"PHONE_PREFIX" default:"+33"`
		// DraftTTLSeconds bounds how long an in-progress draft is kept.
		// Zero keeps drafts until a confirmed submission clears them.
		DraftTTLSeconds int `envconfig:"DRAFT_TTL_SECONDS"`
	} `envconfig:"FORM"`

	BookingAPI struct {
		BaseURL        string `envconfig:"BASE_URL"        default:"http://localhost:8080"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"30"`
	} `envconfig:"BOOKING_API"`

	Storage struct {
		Redis struct {
			Host     string `envconfig:"HOST" default:"localhost"`
			Port     string `envconfig:"PORT" default:"6379"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB"`
		} `envconfig:"REDIS"`
	} `envconfig:"STORAGE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT" default:"localhost:4317"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Form controller configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
