package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultJWTTTLHours  = 24
	defaultDriver       = "mysql"
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

type config struct {
	Address        string
	ContextTimeout time.Duration

	DBDriver string
	DBHost   string
	DBPort   string
	DBUser   string
	DBPass   string
	DBName   string

	CacheAddr string
	CachePass string
	CacheDB   int

	JWTSecret []byte
	JWTTTL    time.Duration

	BloomBitSize uint64
	CORSOrigins  []string

	LogFormat string
	LogLevel  string
}

// loadConfig reads .env when present, then the process environment.
func loadConfig() config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file loaded, using process environment")
	}

	cfg := config{
		Address:   getEnv("SERVER_ADDRESS", defaultAddress),
		DBDriver:  strings.ToLower(getEnv("DATABASE_DRIVER", defaultDriver)),
		DBHost:    os.Getenv("DATABASE_HOST"),
		DBPort:    os.Getenv("DATABASE_PORT"),
		DBUser:    os.Getenv("DATABASE_USER"),
		DBPass:    os.Getenv("DATABASE_PASS"),
		DBName:    os.Getenv("DATABASE_NAME"),
		CacheAddr: os.Getenv("CACHE_HOST") + ":" + os.Getenv("CACHE_PORT"),
		CachePass: os.Getenv("CACHE_PASS"),
		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		LogFormat: os.Getenv("LOG_FORMAT"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		logrus.Info("failed to parse CONTEXT_TIMEOUT, using default timeout")
		timeout = defaultTimeout
	}
	cfg.ContextTimeout = time.Duration(timeout) * time.Second

	cfg.CacheDB, err = strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		cfg.CacheDB = defaultCacheDB
	}

	jwtTTL, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || jwtTTL <= 0 {
		logrus.Info("failed to parse JWT_EXPIRE_HOURS, using default 24 hours")
		jwtTTL = defaultJWTTTLHours
	}
	cfg.JWTTTL = time.Duration(jwtTTL) * time.Hour

	cfg.BloomBitSize, err = strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || cfg.BloomBitSize == 0 {
		cfg.BloomBitSize = defaultBloomBitSize
	}

	for _, o := range strings.Split(os.Getenv("CORS_ALLOW_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg
}

// validate rejects settings the server cannot run safely with.
func (c config) validate() error {
	if len(c.JWTSecret) == 0 {
		return errors.New("JWT_SECRET must be set")
	}
	if c.DBDriver != "mysql" && c.DBDriver != "postgres" {
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DBDriver)
	}
	return nil
}

// dsn builds the connection string for the configured driver.
func (c config) dsn() string {
	if c.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
	}

	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	// RowsAffected counts matched rows, so an update that writes identical values is not reported as missing
	val.Add("clientFoundRows", "true")
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

func setupLogger(c config) {
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
