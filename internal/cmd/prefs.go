package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg-gauge/config"
	"github.com/gogpu/gg-gauge/internal/configpaths"
)

// Prefs groups preference subcommands.
type Prefs struct {
	Init PrefsInit `cmd:"" help:"Write a preferences file with the default values"`
	Show PrefsShow `cmd:"" help:"Print the effective preferences"`
}

// PrefsInit scaffolds a preferences file.
type PrefsInit struct {
	Format string `help:"Output format" enum:"yaml,toml" default:"yaml"`
	Output string `help:"Destination file; defaults to the user config directory" type:"path"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run is called by Kong when the prefs init command is executed.
func (c *PrefsInit) Run(logger *slog.Logger) error {
	dest := c.Output
	if dest == "" {
		p, err := configpaths.DefaultPreferencesPath(c.Format)
		if err != nil {
			return err
		}
		dest = p
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := config.Save(dest, config.Default()); err != nil {
		return err
	}
	logger.Info("preferences written", "file", dest)
	return nil
}

// PrefsShow prints the preferences in effect.
type PrefsShow struct {
	Format string `help:"Output format" enum:"yaml,toml" default:"yaml"`

	out io.Writer
}

// Run is called by Kong when the prefs show command is executed.
func (c *PrefsShow) Run(g *Globals, logger *slog.Logger) error {
	cfg, path, err := g.LoadPreferences()
	if err != nil {
		return err
	}
	if path == "" {
		logger.Debug("no preferences file, showing defaults")
	} else {
		logger.Debug("preferences loaded", "file", path)
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	return config.Encode(out, cfg, c.Format)
}
