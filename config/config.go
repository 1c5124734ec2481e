package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// AppConfig 는 프로세스 시작 시 한 번 만들어져 각 컴포넌트 생성자에 전달된다.
// 호출 시점에 환경변수를 다시 읽지 않는다.
type AppConfig struct {
	ServiceName string          `yaml:"service_name"`
	Logging     LoggingConfig   `yaml:"logging"`
	Server      ServerConfig    `yaml:"server"`
	TMDB        TMDBConfig      `yaml:"tmdb"`
	YouTube     YouTubeConfig   `yaml:"youtube"`
	Sentiment   SentimentConfig `yaml:"sentiment"`
	Analysis    AnalysisConfig  `yaml:"analysis"`
	Mongo       MongoConfig     `yaml:"mongo"`
	Kafka       KafkaConfig     `yaml:"kafka"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	CorsOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TMDBConfig 는 메타데이터 제공자(TMDB) 설정이다. APIKey 는 TMDB_API_KEY 에서만 읽는다.
type TMDBConfig struct {
	APIKey            string        `yaml:"-"`
	BaseURL           string        `yaml:"base_url"`
	Language          string        `yaml:"language"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	// MaxReviewPages 가 0 이면 total_pages 까지 모두 가져온다.
	MaxReviewPages int `yaml:"max_review_pages"`
}

// YouTubeConfig 는 영상 댓글 제공자(YouTube Data API v3) 설정이다.
// APIKey 가 비어 있으면 영상 관련 기능은 비활성화된다.
type YouTubeConfig struct {
	APIKey            string        `yaml:"-"`
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	CommentLimit      int           `yaml:"comment_limit"`
}

// SentimentConfig 는 감성 분류기 설정이다.
// Provider: http(기본값) | gemini | vader
type SentimentConfig struct {
	Provider      string        `yaml:"provider"`
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	HealthTimeout time.Duration `yaml:"health_timeout"`
	GeminiModel   string        `yaml:"gemini_model"`
	GeminiAPIKey  string        `yaml:"-"`
}

type AnalysisConfig struct {
	MinReviewLength int `yaml:"min_review_length"`
	PreviewSize     int `yaml:"preview_size"`
}

// MongoConfig 의 URI 가 비어 있으면 분석 로그를 저장하지 않는다.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// KafkaConfig 의 BootstrapServers 가 비어 있으면 분석 이벤트를 발행하지 않는다.
type KafkaConfig struct {
	BootstrapServers string `yaml:"bootstrap_servers"`
	Topic            string `yaml:"topic"`
}

const (
	SentimentProviderHTTP   = "http"
	SentimentProviderGemini = "gemini"
	SentimentProviderVader  = "vader"
)

// Default 는 config.yaml 이 없을 때도 동작하는 기본 설정을 반환한다.
func Default() AppConfig {
	return AppConfig{
		ServiceName: "movie-review-backend",
		Logging:     LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Port:            8080,
			CorsOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		TMDB: TMDBConfig{
			BaseURL:           "https://api.themoviedb.org/3",
			Language:          "en-US",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 40,
		},
		YouTube: YouTubeConfig{
			BaseURL:           "https://www.googleapis.com/youtube/v3",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 10,
			CommentLimit:      200,
		},
		Sentiment: SentimentConfig{
			Provider:      SentimentProviderHTTP,
			BaseURL:       "http://127.0.0.1:8000",
			Timeout:       60 * time.Second,
			HealthTimeout: 2 * time.Second,
			GeminiModel:   "gemini-2.5-flash",
		},
		Analysis: AnalysisConfig{
			MinReviewLength: 20,
			PreviewSize:     5,
		},
		Mongo: MongoConfig{Database: "moviereview"},
		Kafka: KafkaConfig{Topic: "movie-review.analysis.events"},
	}
}

// Load 는 .env 와 config.yaml 을 읽어 AppConfig 를 만든다.
// config.yaml 이 없으면 기본값 위에 환경변수만 적용한다.
func Load() (AppConfig, error) {
	base := GetBasePath()
	_ = godotenv.Load(filepath.Join(base, ENV_FILE))

	cfg := Default()
	if base != "" {
		data, err := os.ReadFile(filepath.Join(base, CONFIG_FILE))
		if err != nil {
			return AppConfig{}, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// applyEnv 는 비밀값과 배포 환경별 override 를 환경변수에서 채운다.
func applyEnv(cfg *AppConfig) {
	cfg.TMDB.APIKey = strings.TrimSpace(os.Getenv("TMDB_API_KEY"))
	cfg.YouTube.APIKey = strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	cfg.Sentiment.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	if v := os.Getenv("SENTIMENT_BASE_URL"); v != "" {
		cfg.Sentiment.BaseURL = v
	}
	if v := os.Getenv("SENTIMENT_PROVIDER"); v != "" {
		cfg.Sentiment.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		cfg.Kafka.BootstrapServers = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		cfg.Server.Port = v
	}
}

// Validate 는 설정 값 자체가 잘못된 경우만 거부한다.
// TMDB 키 누락은 치명적이지 않다. 해당 엔드포인트가 500 으로 응답한다.
func (c AppConfig) Validate() error {
	switch c.Sentiment.Provider {
	case SentimentProviderHTTP:
		if c.Sentiment.BaseURL == "" {
			return fmt.Errorf("sentiment.base_url is required for provider %q", c.Sentiment.Provider)
		}
	case SentimentProviderGemini, SentimentProviderVader:
	default:
		return fmt.Errorf("unsupported sentiment provider: %q", c.Sentiment.Provider)
	}
	if c.Sentiment.Timeout <= 0 {
		return fmt.Errorf("sentiment.timeout must be positive")
	}
	if c.TMDB.Timeout <= 0 || c.YouTube.Timeout <= 0 {
		return fmt.Errorf("provider timeouts must be positive")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if c.Analysis.PreviewSize < 0 || c.Analysis.MinReviewLength < 0 {
		return fmt.Errorf("analysis settings must not be negative")
	}
	return nil
}

func (c AppConfig) TMDBConfigured() bool    { return c.TMDB.APIKey != "" }
func (c AppConfig) YouTubeConfigured() bool { return c.YouTube.APIKey != "" }

// GetBasePath 는 현재 디렉터리부터 상위로 올라가며 config.yaml 이 있는 디렉터리를 찾는다.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
