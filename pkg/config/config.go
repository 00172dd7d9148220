package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvScene      = "SMALLPT_SCENE"
	EnvWidth      = "SMALLPT_WIDTH"
	EnvHeight     = "SMALLPT_HEIGHT"
	EnvSPP        = "SMALLPT_SPP"
	EnvMaxDepth   = "SMALLPT_MAX_DEPTH"
	EnvWorkers    = "SMALLPT_WORKERS"
	EnvSeed       = "SMALLPT_SEED"
	EnvOutputDir  = "SMALLPT_OUTPUT_DIR"
	EnvLogLevel   = "SMALLPT_LOG_LEVEL"
	EnvS3Access   = "S3_ACCESS_KEY"
	EnvS3Secret   = "S3_SECRET_KEY"
	EnvS3Endpoint = "S3_ENDPOINT"
	EnvS3Region   = "S3_REGION"
	EnvS3Bucket   = "S3_BUCKET"
	EnvS3Prefix   = "S3_PREFIX"
)

// S3 holds the settings for uploading rendered frames
type S3 struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string // Key prefix for uploaded objects
}

// Enabled reports whether enough settings are present to upload
func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// Config holds render defaults. Zero numeric values mean "use the scene preset".
type Config struct {
	Scene           string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Seed            uint64
	OutputDir       string
	LogLevel        string
	S3              S3
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Scene:     "default",
		OutputDir: "output",
		LogLevel:  "notice",
		S3:        S3{Region: "us-east-1"},
	}
}

// Load reads dir/.env into the process environment, without overriding variables that
// are already set, and builds a Config from the environment. A missing .env is not an error.
func Load(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment on top of Default
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.Scene = getEnv(EnvScene, cfg.Scene)
	cfg.OutputDir = getEnv(EnvOutputDir, cfg.OutputDir)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvSPP, &cfg.SamplesPerPixel},
		{EnvMaxDepth, &cfg.MaxDepth},
		{EnvWorkers, &cfg.Workers},
	}
	for _, v := range ints {
		n, err := getEnvInt(v.key, *v.dst)
		if err != nil {
			return Config{}, err
		}
		*v.dst = n
	}

	if raw := getEnv(EnvSeed, ""); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	cfg.S3 = S3{
		AccessKey: getEnv(EnvS3Access, ""),
		SecretKey: getEnv(EnvS3Secret, ""),
		Endpoint:  getEnv(EnvS3Endpoint, ""),
		Region:    getEnv(EnvS3Region, cfg.S3.Region),
		Bucket:    getEnv(EnvS3Bucket, ""),
		Prefix:    getEnv(EnvS3Prefix, ""),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("config: %s must not be negative, got %d", key, n)
	}
	return n, nil
}
