// Command gauges renders acceleration and rotation gauges from live or
// recorded sensor samples.
//
//	gauges snapshot rotation --values=0,0.3,0.8 -o horizon.png
//	gauges record acceleration --input=walk.csv --dir=frames
//	gauges view rotation
//	gauges prefs init --format=toml
package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/internal/cmd"
	"github.com/gogpu/gg-gauge/internal/configpaths"
	"github.com/gogpu/gg-gauge/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("gauges"),
		kong.Description("Analog acceleration and rotation gauges"),
		kong.UsageOnError(),
		// Flag defaults from JSON/YAML/TOML in priority order; flags and env win.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()
	gauge.SetLogger(logger)

	ctx.Bind(logger)
	ctx.Bind(&cli.Globals)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("GAUGES_CONFIG")
}
