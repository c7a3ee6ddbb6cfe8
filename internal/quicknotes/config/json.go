package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Jai71/quicknotes/internal/flagx"
	"github.com/Jai71/quicknotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	Endpoint       string         `json:"endpoint"`
	Namespace      string         `json:"namespace"`
	Database       string         `json:"database"`
	Access         string         `json:"access"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. When no file is given the function returns without
// touching cfg. Read or unmarshal errors panic; the caller may recover.
//
// Only fields present in the file override the existing values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Endpoint != "" {
		cfg.Endpoint = jc.Endpoint
	}
	if jc.Namespace != "" {
		cfg.Namespace = jc.Namespace
	}
	if jc.Database != "" {
		cfg.Database = jc.Database
	}
	if jc.Access != "" {
		cfg.Access = jc.Access
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
