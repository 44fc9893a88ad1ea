package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"log"
	"time"
)

type Settings struct {
	ServerPort    int
	JWTPublicKey  string
	FetchTimeout  time.Duration
	FetchMaxBytes int64
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("FETCH_TIMEOUT", 10)
	viper.SetDefault("FETCH_MAX_BYTES", 32<<20)

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	return &Settings{
		ServerPort:    viper.GetInt("SERVER_PORT"),
		JWTPublicKey:  viper.GetString("JWT_PUBLIC_KEY"),
		FetchTimeout:  time.Duration(viper.GetInt("FETCH_TIMEOUT")) * time.Second,
		FetchMaxBytes: viper.GetInt64("FETCH_MAX_BYTES"),
	}, nil
}
