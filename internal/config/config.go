package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"

	DefaultCatalogFile = "data/movies.json"
)

type HTTPServer struct {
	Host string
	Port string
}

type Log struct {
	Env string
}

type Catalog struct {
	Source string
	File   string
}

// Redis is optional: an empty Host keeps reviews in process memory.
type Redis struct {
	Host     string
	Port     string
	Password string
	Key      string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Limiter struct {
	RPS     float64
	Burst   int
	Enabled bool
}

type Config struct {
	HTTP     HTTPServer
	Log      Log
	Catalog  Catalog
	Redis    Redis
	Postgres Postgres
	Limiter  Limiter
}

const logtag = "[config]"

var configPath = flag.String("config", "", "path env file")

func Load() *Config {
	if !flag.Parsed() {
		flag.Parse()
	}

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Log:      *newLog(),
		Catalog:  *newCatalog(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Limiter:  *newLimiter(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newLog() *Log {
	return &Log{
		Env: getenv("LOG_ENV", "local"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		Source: getenv("CATALOG_SOURCE", CatalogSourceFile),
		File:   getenv("CATALOG_FILE", DefaultCatalogFile),
	}
}

func newRedis() *Redis {
	return &Redis{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", ""),
		Password: getenv("REDIS_PASSWORD", ""),
		Key:      getenv("REDIS_KEY", "movies"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "movies"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newLimiter() *Limiter {
	return &Limiter{
		RPS:     getenvFloat("LIMITER_RPS", 2),
		Burst:   getenvInt("LIMITER_BURST", 4),
		Enabled: getenvBool("LIMITER_ENABLED", true),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not an integer. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvFloat(key string, defaultValue float64) float64 {
	raw := getenv(key, strconv.FormatFloat(defaultValue, 'f', -1, 64))
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Printf("%s %s is not a number. Using default value %v\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvBool(key string, defaultValue bool) bool {
	raw := getenv(key, strconv.FormatBool(defaultValue))
	val, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Printf("%s %s is not a boolean. Using default value %t\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
