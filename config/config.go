package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/kafka"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/logger"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RENTAL_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"RENTAL_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type Auth struct {
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin" json:"-"`
}

type Booking struct {
	// MinDurationMinutes rejects back-office bookings shorter than this.
	MinDurationMinutes int `envconfig:"BOOKING_MIN_DURATION_MINUTES" default:"15"`
	// WebsiteMinDays floors the charged days for public website requests.
	WebsiteMinDays int `envconfig:"BOOKING_WEBSITE_MIN_DAYS" default:"1"`
}

type SMTP struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD" json:"-"`
	From     string `envconfig:"SMTP_FROM" default:"bookings@rmq-rental.example"`
}

type Storage struct {
	Dir string `envconfig:"STORAGE_DIR" default:"./uploads"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Log      logger.Log   `yaml:"log"`
	Auth     Auth         `yaml:"auth"`
	Booking  Booking      `yaml:"booking"`
	SMTP     SMTP         `yaml:"smtp"`
	Storage  Storage      `yaml:"storage"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
