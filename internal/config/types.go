package config

// Config is the decoded configuration file.
type Config struct {
	Paths PathsConfig `yaml:"paths" json:"paths"`
	Other OtherConfig `yaml:"other" json:"other"`
}

// PathsConfig locates the McStas installation.
type PathsConfig struct {
	// McRunPath is the directory holding the mcrun executable.
	McRunPath string `yaml:"mcrun_path" json:"mcrun_path"`
	// McStasPath is the directory containing sources, optics, samples, ...
	McStasPath string `yaml:"mcstas_path" json:"mcstas_path"`
}

// OtherConfig holds presentation settings.
type OtherConfig struct {
	CharactersPerLine int `yaml:"characters_per_line" json:"characters_per_line"`
}
