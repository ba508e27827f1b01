package config

import (
	"encoding/json"
	"os"

	"github.com/avoskres/parlor/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero values, so a partial config file only
// overrides the keys it mentions.
type JsonConfig struct {
	DatabasePath *string `json:"database_path"`
	PageSize     *int    `json:"page_size"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path is taken from the -c/-config flags; when neither is set, nothing is
// loaded. Read or unmarshal errors panic, matching flag-parse failures.
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

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
