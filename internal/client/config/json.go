package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/capnote/capnote/internal/flagx"
	"github.com/capnote/capnote/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts use
// timex.Duration so the file can say "10s" instead of nanoseconds. Pointer
// fields distinguish "absent" from "zero" so partial files only override
// what they mention.
type JsonConfig struct {
	EndpointURL        *string         `json:"endpoint_url"`
	Namespace          *string         `json:"namespace"`
	Database           *string         `json:"database"`
	Access             *string         `json:"access"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	UpcomingWindowDays *int            `json:"upcoming_window_days"`
	S3Endpoint         *string         `json:"s3_endpoint"`
	S3Region           *string         `json:"s3_region"`
	S3Bucket           *string         `json:"s3_bucket"`
	S3AccessKey        *string         `json:"s3_access_key"`
	S3SecretKey        *string         `json:"s3_secret_key"`
	S3PublicBaseURL    *string         `json:"s3_public_base_url"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. Without the flag nothing is loaded. Read or unmarshal
// errors panic; the process cannot do anything useful with a broken config.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.EndpointURL, jc.EndpointURL)
	setString(&cfg.Namespace, jc.Namespace)
	setString(&cfg.Database, jc.Database)
	setString(&cfg.Access, jc.Access)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.UpcomingWindowDays != nil {
		cfg.UpcomingWindowDays = *jc.UpcomingWindowDays
	}
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3PublicBaseURL, jc.S3PublicBaseURL)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
