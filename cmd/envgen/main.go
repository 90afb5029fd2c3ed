package main

import (
	"aggregat4/clientenv/internal/config"
	"aggregat4/clientenv/internal/domain"
	"aggregat4/clientenv/internal/environment"
	"aggregat4/clientenv/internal/logging"
	"aggregat4/clientenv/internal/render"
	"aggregat4/clientenv/pkg/lang"
	"flag"
	"os"
)

var logger = logging.ForComponent("cmd.envgen")

func main() {
	var configFileLocation string
	flag.StringVar(&configFileLocation, "config", "", "The location of the configuration file if you do not want to default to the standard location")
	var environmentName string
	flag.StringVar(&environmentName, "env", "", "The environment to render, defaults to CLIENTENV_ENVIRONMENT or the default of the config file")
	var formatName string
	flag.StringVar(&formatName, "format", "ts", "Output format: ts or json")
	var outputFile string
	flag.StringVar(&outputFile, "out", "", "File to write to, stdout when empty")
	var builtin bool
	flag.BoolVar(&builtin, "builtin", false, "Render the built-in template environment instead of reading a config file")
	var dotEnvFile string
	flag.StringVar(&dotEnvFile, "dotenv", ".env", "File with environment variable overrides")
	var logLevel string
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		logging.Fatal(logger, "{Error}", err)
	}
	logging.SetLevel(level)

	format, err := render.ParseFormat(formatName)
	if err != nil {
		logging.Fatal(logger, "{Error}", err)
	}

	var env *domain.Environment
	if builtin {
		env = environment.Default()
	} else {
		if err := config.LoadDotEnv(dotEnvFile); err != nil {
			logging.Fatal(logger, "Error loading {DotEnvFile}: {Error}", dotEnvFile, err)
		}
		location := lang.IfElse(configFileLocation == "", config.GetDefaultConfigPath(), configFileLocation)
		holder, err := config.ReadConfig(location, environmentName)
		if err != nil {
			logging.Fatal(logger, "Error reading configuration: {Error}", err)
		}
		env = holder.Current()
	}

	output, err := render.Render(format, env)
	if err != nil {
		logging.Fatal(logger, "Error rendering environment: {Error}", err)
	}
	if outputFile == "" {
		if _, err := os.Stdout.Write(output); err != nil {
			logging.Fatal(logger, "Error writing output: {Error}", err)
		}
		return
	}
	if err := os.WriteFile(outputFile, output, 0o644); err != nil {
		logging.Fatal(logger, "Error writing {OutputFile}: {Error}", outputFile, err)
	}
	logger.Info("Wrote {Format} environment to {OutputFile}", string(format), outputFile)
}
