package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Dataset defaults match the layout of the published NASA data drops
	v.SetDefault("data.neo_csv_path", "data/neos.csv")
	v.SetDefault("data.cad_json_path", "data/cad.json")

	// Query defaults
	v.SetDefault("query.default_limit", 10) // matches the classic explorer default

	// Log defaults
	v.SetDefault("log.theme", "everforest")
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			NEOCSVPath:  "data/neos.csv",
			CADJSONPath: "data/cad.json",
		},
		Query: QueryConfig{DefaultLimit: 10},
		Log:   LogConfig{Theme: "everforest"},
	}
}
