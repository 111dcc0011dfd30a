package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings holds runtime configuration read from the environment.
// All values are optional; empty means the feature is disabled or
// the built-in default applies.
type Settings struct {
	SeenURLsPath string
	CSVPath      string
	JSONPath     string

	RequestTimeout  time.Duration
	FetchRetries    int
	DaysBack        int
	EnrichSummaries bool

	// Redis mirror of the seen-URL set (optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	BloomKey      string

	// Kafka publisher for newly surfaced items (optional)
	KafkaBrokers []string
	KafkaTopic   string

	// S3 snapshot archive (optional)
	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3UsePathStyle bool
}

// LoadSettings reads runtime settings from environment variables.
func LoadSettings() Settings {
	s := Settings{
		SeenURLsPath:    envOr("SEEN_URLS_FILE", SeenURLsFile),
		CSVPath:         envOr("OUTPUT_CSV", OutputDraftCSV),
		JSONPath:        envOr("OUTPUT_JSON", OutputDraftJSON),
		RequestTimeout:  RequestTimeout,
		FetchRetries:    FetchRetries,
		DaysBack:        FederalRegisterDaysBack,
		EnrichSummaries: strings.EqualFold(strings.TrimSpace(os.Getenv("ENRICH_SUMMARIES")), "true"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASS"),
		BloomKey:        envOr("BLOOM_KEY", "edmwatch:seen"),
		KafkaTopic:      os.Getenv("KAFKA_TOPIC"),
		S3Bucket:        strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:        strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:       strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3UsePathStyle:  strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			s.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("FETCH_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.FetchRetries = n
		}
	}
	if v := os.Getenv("DAYS_BACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.DaysBack = n
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.RedisDB = n
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				s.KafkaBrokers = append(s.KafkaBrokers, b)
			}
		}
	}
	if p := strings.TrimSpace(os.Getenv("S3_PREFIX")); p != "" {
		s.S3Prefix = strings.Trim(p, "/") + "/"
	}

	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
