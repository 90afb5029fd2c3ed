package main

import (
	"aggregat4/clientenv/internal/config"
	"aggregat4/clientenv/internal/logging"
	"aggregat4/clientenv/pkg/lang"
	"flag"
)

var logger = logging.ForComponent("cmd.envcheck")

func main() {
	var configFileLocation string
	flag.StringVar(&configFileLocation, "config", "", "The location of the configuration file if you do not want to default to the standard location")
	var environmentName string
	flag.StringVar(&environmentName, "env", "", "The environment to check, defaults to CLIENTENV_ENVIRONMENT or the default of the config file")
	var dotEnvFile string
	flag.StringVar(&dotEnvFile, "dotenv", ".env", "File with environment variable overrides")
	flag.Parse()

	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		logging.Fatal(logger, "Error loading {DotEnvFile}: {Error}", dotEnvFile, err)
	}
	location := lang.IfElse(configFileLocation == "", config.GetDefaultConfigPath(), configFileLocation)
	holder, err := config.ReadConfig(location, environmentName)
	if err != nil {
		logging.Fatal(logger, "Configuration {ConfigFile} is invalid: {Error}", location, err)
	}

	logger.Info("Environments: {Names}", holder.Names())
	for _, field := range holder.Current().Fields() {
		logger.Info("{Environment} {Key} = {Value}", holder.Selected(), field.Key, field.Value)
	}
}
