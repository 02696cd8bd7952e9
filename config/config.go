package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Redis      RedisConfig      `yaml:"redis"`
	Storage    StorageConfig    `yaml:"storage"`
	Pagination PaginationConfig `yaml:"pagination"`
	LogLevel   string           `yaml:"log_level"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	ListCacheTTL int    `yaml:"list_cache_ttl"`
}

type StorageConfig struct {
	BasePath      string `yaml:"base_path"`
	UploadDir     string `yaml:"upload_dir"`
	OutputDir     string `yaml:"output_dir"`
	SubtitleDir   string `yaml:"subtitle_dir"`
	ThumbnailDir  string `yaml:"thumbnail_dir"`
	MaxUploadSize int64  `yaml:"max_upload_size"`
}

type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// LoadConfig reads the yaml config at path. A missing file is not an error:
// the demo runs on defaults plus environment overrides alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "clipper"
	}
	if cfg.Redis.ListCacheTTL == 0 {
		cfg.Redis.ListCacheTTL = 30
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "."
	}
	if cfg.Storage.UploadDir == "" {
		cfg.Storage.UploadDir = "uploads"
	}
	if cfg.Storage.OutputDir == "" {
		cfg.Storage.OutputDir = "outputs"
	}
	if cfg.Storage.SubtitleDir == "" {
		cfg.Storage.SubtitleDir = "subtitles"
	}
	if cfg.Storage.ThumbnailDir == "" {
		cfg.Storage.ThumbnailDir = "thumbnails"
	}
	if cfg.Storage.MaxUploadSize == 0 {
		cfg.Storage.MaxUploadSize = 200 << 20
	}
	if cfg.Pagination.DefaultLimit == 0 {
		cfg.Pagination.DefaultLimit = 20
	}
	if cfg.Pagination.MaxLimit == 0 {
		cfg.Pagination.MaxLimit = 100
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
