package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	BlobBackendFS    = "fs"
	BlobBackendMinio = "minio"

	MetadataBackendMongo    = "mongo"
	MetadataBackendPostgres = "postgres"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Log      LogConfig
	Upload   UploadConfig
	Storage  StorageConfig
	Minio    MinioConfig
	Mongo    MongoConfig
	Database DatabaseConfig
	NATS     NATSConfig
	CORS     CORSConfig
	Cleanup  CleanupConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"5000"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format     string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100" validate:"gte=1"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5" validate:"gte=0"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28" validate:"gte=0"`
}

type UploadConfig struct {
	Dir              string `envconfig:"UPLOAD_DIR" default:"uploads" validate:"required"`
	BaseURL          string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:5000" validate:"required,url"`
	MaxVideoSize     int64  `envconfig:"UPLOAD_MAX_VIDEO_SIZE" default:"1073741824" validate:"gt=0"`   // 1GB
	MaxThumbnailSize int64  `envconfig:"UPLOAD_MAX_THUMBNAIL_SIZE" default:"10485760" validate:"gt=0"` // 10MB
	RequireThumbnail bool   `envconfig:"UPLOAD_REQUIRE_THUMBNAIL" default:"false"`
}

// MaxRequestSize is the largest multipart body accepted for a single upload
func (c UploadConfig) MaxRequestSize() int64 {
	return c.MaxVideoSize + c.MaxThumbnailSize + 1<<20
}

type StorageConfig struct {
	BlobBackend     string `envconfig:"BLOB_BACKEND" default:"fs" validate:"oneof=fs minio"`
	MetadataBackend string `envconfig:"METADATA_BACKEND" default:"mongo" validate:"oneof=mongo postgres"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" validate:"required"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" validate:"required"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" validate:"required"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" validate:"required"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type MongoConfig struct {
	URI            string        `envconfig:"MONGODB_URI" validate:"required"`
	Database       string        `envconfig:"MONGODB_DATABASE" default:"streamify" validate:"required"`
	Collection     string        `envconfig:"MONGODB_COLLECTION" default:"movies" validate:"required"`
	ConnectTimeout time.Duration `envconfig:"MONGODB_CONNECT_TIMEOUT" default:"5s"`
	MaxPoolSize    uint64        `envconfig:"MONGODB_MAX_POOL_SIZE" default:"50"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" validate:"required"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" validate:"required"`
	Password       string        `envconfig:"DB_PASSWORD" validate:"required"`
	Name           string        `envconfig:"DB_NAME" validate:"required"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// DSN returns the lib/pq connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// URL returns the connection url understood by golang-migrate
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// NATSConfig is optional, events are not published when URL is empty
type NATSConfig struct {
	URL           string `envconfig:"NATS_URL"`
	StreamName    string `envconfig:"NATS_STREAM_NAME" default:"MOVIES"`
	SubjectPrefix string `envconfig:"NATS_SUBJECT_PREFIX" default:"movies"`
	ClientName    string `envconfig:"NATS_CLIENT_NAME" default:"streamify-api"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

type CleanupConfig struct {
	Enabled bool          `envconfig:"CLEANUP_ENABLED" default:"true"`
	Every   time.Duration `envconfig:"CLEANUP_EVERY" default:"1h"`
	Grace   time.Duration `envconfig:"CLEANUP_GRACE" default:"24h"`
}

// Load reads the optional dotenv files (".env" when none given) then the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDatabase reads only the DB_* section, for tools that need nothing else
func LoadDatabase(files ...string) (*DatabaseConfig, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the always-on sections and the sections of the selected backends
func (c *Config) Validate() error {
	validate := validator.New()

	sections := []any{c.Log, c.Upload, c.Storage}
	switch c.Storage.BlobBackend {
	case BlobBackendMinio:
		sections = append(sections, c.Minio)
	}
	switch c.Storage.MetadataBackend {
	case MetadataBackendMongo:
		sections = append(sections, c.Mongo)
	case MetadataBackendPostgres:
		sections = append(sections, c.Database)
	}

	for _, section := range sections {
		if err := validate.Struct(section); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	if c.Cleanup.Enabled && c.Cleanup.Every <= 0 {
		return errors.New("invalid config: CLEANUP_EVERY must be positive")
	}
	return nil
}
