package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays cfg with CAPNOTE_* environment variables. Unset and
// empty variables are skipped; malformed numeric values are ignored rather
// than fatal, the default stays in effect.
func parseEnv(cfg *Config) {
	envString(&cfg.EndpointURL, "CAPNOTE_ENDPOINT_URL")
	envString(&cfg.Namespace, "CAPNOTE_NAMESPACE")
	envString(&cfg.Database, "CAPNOTE_DATABASE")
	envString(&cfg.Access, "CAPNOTE_ACCESS")

	if v := os.Getenv("CAPNOTE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("CAPNOTE_UPCOMING_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UpcomingWindowDays = n
		}
	}

	envString(&cfg.S3Endpoint, "CAPNOTE_S3_ENDPOINT")
	envString(&cfg.S3Region, "CAPNOTE_S3_REGION")
	envString(&cfg.S3Bucket, "CAPNOTE_S3_BUCKET")
	envString(&cfg.S3AccessKey, "CAPNOTE_S3_ACCESS_KEY")
	envString(&cfg.S3SecretKey, "CAPNOTE_S3_SECRET_KEY")
	envString(&cfg.S3PublicBaseURL, "CAPNOTE_S3_PUBLIC_BASE_URL")
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
