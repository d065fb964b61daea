package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// DefaultCharactersPerLine is the preview width written to new files.
	DefaultCharactersPerLine = 93

	// McStasEnvVar names the environment variable McStas installations
	// export for their resource directory.
	McStasEnvVar = "MCSTAS"

	macMcStasPath = "/Applications/McStas-2.5.app/Contents/Resources/mcstas/2.5/"
	macMcRunPath  = "/Applications/McStas-2.5.app/Contents/Resources/mcstas/2.5/bin/"

	linuxMcStasPath = "/usr/share/mcstas/2.5/"
	linuxMcRunPath  = "/usr/bin/"
)

// GetDefaultConfig returns the configuration written when no file exists.
func GetDefaultConfig() Config {
	cfg := Config{
		Paths: PathsConfig{
			McRunPath:  linuxMcRunPath,
			McStasPath: linuxMcStasPath,
		},
		Other: OtherConfig{CharactersPerLine: DefaultCharactersPerLine},
	}

	if runtime.GOOS == "darwin" {
		cfg.Paths.McRunPath = macMcRunPath
		cfg.Paths.McStasPath = macMcStasPath
	}

	if env := os.Getenv(McStasEnvVar); env != "" {
		cfg.Paths.McStasPath = withTrailingSeparator(env)
		cfg.Paths.McRunPath = withTrailingSeparator(filepath.Join(env, "bin"))
	}
	return cfg
}

func withTrailingSeparator(path string) string {
	if path == "" || os.IsPathSeparator(path[len(path)-1]) {
		return path
	}
	return path + string(filepath.Separator)
}
