package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	MongoURI       string
	JWTSecret      string
	Port           string
	DBName         string
	PasswordMinLen int
}

// Load reads configuration from the environment (a .env file is honored if
// present). MONGO_URL and JWT_SECRET are mandatory; starting without them is
// a hard failure, never a fallback to an embedded literal.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:       os.Getenv("MONGO_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           os.Getenv("PORT"),
		DBName:         os.Getenv("DB_NAME"),
		PasswordMinLen: 8,
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URL is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBName == "" {
		cfg.DBName = "spicemart"
	}
	if v := os.Getenv("PASSWORD_MIN_LEN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Fatalf("invalid PASSWORD_MIN_LEN: %q", v)
		}
		cfg.PasswordMinLen = n
	}
	return cfg
}

// ConnectMongo dials the database and verifies the connection with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}
