package config

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".traindelay.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:       "Deutsche Bahn Train Delay Analysis",
		DataPath:    "DBtrainrides_1000.csv",
		FigsDir:     "Figs",
		Port:        8501,
		PreviewRows: 5,
		Placeholder: "—",
	}
}
