package config

// Config is the top-level dashboard configuration, corresponding to .traindelay.yml.
type Config struct {
	Title           string `yaml:"title" koanf:"title"`
	DataPath        string `yaml:"data_path" koanf:"data_path"`
	FigsDir         string `yaml:"figs_dir" koanf:"figs_dir"`
	Port            int    `yaml:"port" koanf:"port"`
	PreviewRows     int    `yaml:"preview_rows" koanf:"preview_rows"`
	Placeholder     string `yaml:"placeholder" koanf:"placeholder"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
