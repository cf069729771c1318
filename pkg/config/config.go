package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress      string
	DatabaseURI     string
	PlatformAddress string
	SecretKey       string
	LogLevel        string
	StaticDir       string
	S3Bucket        string
	S3Region        string
	S3Prefix        string
}

func Parse() *Config {
	// .env is optional, for local runs.
	_ = godotenv.Load()

	cfg := Config{
		// Defaults
		RunAddress:      "localhost:8080",
		PlatformAddress: "localhost:8081",
		SecretKey:       "secret",
		LogLevel:        "debug",
		StaticDir:       "./web/dist",
		S3Region:        "us-east-1",
		S3Prefix:        "uploads/",
	}
	cfg.updateFromFlags()
	cfg.updateFromEnv()
	return &cfg
}

func (cfg *Config) updateFromFlags() {
	flagRunAddress := flag.String("a", cfg.RunAddress, "Server address.")
	flagDatabaseURI := flag.String("d", cfg.DatabaseURI, "Postgres DSN.")
	flagPlatformAddress := flag.String("p", cfg.PlatformAddress, "Course platform API address.")

	flag.Parse()

	cfg.RunAddress = *flagRunAddress
	cfg.DatabaseURI = *flagDatabaseURI
	cfg.PlatformAddress = *flagPlatformAddress
}

func (cfg *Config) updateFromEnv() {
	if addr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = addr
	}
	if db, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = db
	}
	if addr, ok := os.LookupEnv("PLATFORM_ADDRESS"); ok {
		cfg.PlatformAddress = addr
	}
	if secret, ok := os.LookupEnv("SECRET_KEY"); ok {
		cfg.SecretKey = secret
	}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = lvl
	}
	if dir, ok := os.LookupEnv("STATIC_DIR"); ok {
		cfg.StaticDir = dir
	}
	if bucket, ok := os.LookupEnv("S3_BUCKET"); ok {
		cfg.S3Bucket = bucket
	}
	if region, ok := os.LookupEnv("S3_REGION"); ok {
		cfg.S3Region = region
	}
	if prefix, ok := os.LookupEnv("S3_PREFIX"); ok {
		cfg.S3Prefix = prefix
	}
}
