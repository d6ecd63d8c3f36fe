// Package configpaths locates configuration and preference files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration directory.
const AppName = "gg-gauge"

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, AppName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", AppName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultPreferencesPath returns the default preferences file for format
// ("yaml" or "toml"; anything else is treated as yaml).
func DefaultPreferencesPath(format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	ext := "yaml"
	if format == "toml" {
		ext = "toml"
	}
	return filepath.Join(dir, "preferences."+ext), nil
}

// FindPreferences returns the first existing preferences file among the
// working directory and the configuration directory, or "" when none exists.
func FindPreferences() string {
	var candidates []string
	wd, _ := os.Getwd()
	dir, err := DefaultConfigDir()
	for _, base := range []string{"preferences.yaml", "preferences.yml", "preferences.toml"} {
		candidates = append(candidates, filepath.Join(wd, base))
		if err == nil {
			candidates = append(candidates, filepath.Join(dir, base))
		}
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths builds candidate CLI flag-default files per format.
// If userPath is provided, it is prioritized and routed to the matching
// loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	for _, base := range []string{AppName, "gauges"} {
		add(&jsonPaths, filepath.Join(wd, base+".json"))
		add(&yamlPaths, filepath.Join(wd, base+".yaml"))
		add(&yamlPaths, filepath.Join(wd, base+".yml"))
		add(&tomlPaths, filepath.Join(wd, base+".toml"))
	}

	if dir, err := DefaultConfigDir(); err == nil {
		add(&jsonPaths, filepath.Join(dir, "gauges.json"))
		add(&yamlPaths, filepath.Join(dir, "gauges.yaml"))
		add(&yamlPaths, filepath.Join(dir, "gauges.yml"))
		add(&tomlPaths, filepath.Join(dir, "gauges.toml"))
	}
	return
}
