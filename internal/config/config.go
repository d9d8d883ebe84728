package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App             *App
		Token           *Token
		DB              *DB
		HTTP            *HTTP
		Redis           *Redis
		IdentityService *IdentityService
		Telemetry       *Telemetry
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	IdentityService struct {
		URL    string
		APIKey string
	}

	Telemetry struct {
		Seed int64
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	token := &Token{
		Secret: os.Getenv("TOKEN_SECRET"),
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	identity := &IdentityService{
		URL:    os.Getenv("IDENTITY_SERVICE_URL"),
		APIKey: os.Getenv("IDENTITY_SERVICE_API_KEY"),
	}

	telemetry := &Telemetry{
		Seed: parseSeed(os.Getenv("TELEMETRY_SEED")),
	}

	return &Container{
		App:             app,
		Token:           token,
		DB:              db,
		HTTP:            http,
		Redis:           redis,
		IdentityService: identity,
		Telemetry:       telemetry,
	}, nil
}

func parseSeed(raw string) int64 {
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return seed
}
