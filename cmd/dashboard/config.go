package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application's configuration structure.
type Config struct {
	DataURL              string   `json:"data-url" mapstructure:"data-url"`
	DataPath             string   `json:"data-path" mapstructure:"data-path"`
	LogLevel             string   `json:"log-level" mapstructure:"log-level"`
	Year                 int      `json:"year" mapstructure:"year"`
	State                string   `json:"state" mapstructure:"state"`
	Category             string   `json:"category" mapstructure:"category"`
	TimePeriods          []string `json:"time-periods" mapstructure:"time-periods"`
	CorrelationMinOrders int      `json:"correlation-min-orders" mapstructure:"correlation-min-orders"`
	RankingMinOrders     int      `json:"ranking-min-orders" mapstructure:"ranking-min-orders"`
	RankSize             int      `json:"rank-size" mapstructure:"rank-size"`
	MemoizeAggregations  bool     `json:"memoize-aggregations" mapstructure:"memoize-aggregations"`
}

// field: default value
var optionalFields = map[string]interface{}{
	"log-level":              "INFO",
	"correlation-min-orders": 10,
	"ranking-min-orders":     0,
	"rank-size":              5,
	"memoize-aggregations":   false,
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file. A missing
// config file is not an error; every field has a usable default.
func InitConfig(configFilePath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for field := range optionalFields {
		v.BindEnv(field)
	}
	for _, field := range []string{"data-url", "data-path", "year", "state", "category"} {
		v.BindEnv(field)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Warningf("Could not read config file %s, using defaults: %v", configFilePath, err)
	}

	for optField, defaultValue := range optionalFields {
		if !v.IsSet(optField) {
			v.Set(optField, defaultValue)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}
