package config

import (
	"aggregat4/clientenv/internal/domain"
	"aggregat4/clientenv/internal/environment"
	"aggregat4/clientenv/internal/logging"
	"aggregat4/clientenv/pkg/lang"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kirsle/configdir"
	"github.com/knadh/koanf/parsers/hjson"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix          = "CLIENTENV_"
	EnvSelectVariable  = EnvPrefix + "ENVIRONMENT"
	environmentsKey    = "environments"
	defaultEnvironment = "default"
)

var (
	ErrNoEnvironments    = errors.New("no environments configured")
	ErrMissingField      = errors.New("missing configuration fields")
	ErrInvalidField      = errors.New("invalid configuration field")
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

var logger = logging.ForComponent("internal.config")

func GetDefaultConfigPath() string {
	return configdir.LocalConfig("clientenv") + "/clientenv.json"
}

// ReadConfig loads every environment from the config file and selects the active one. The name argument
// wins over CLIENTENV_ENVIRONMENT, which wins over the "default" key of the file.
// Environment variables prefixed with CLIENTENV_ override fields of the selected environment only.
func ReadConfig(configFileLocation string, name string) (*environment.Holder, error) {
	parser, err := parserFor(configFileLocation)
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(configFileLocation), parser); err != nil {
		return nil, fmt.Errorf("error loading config file %s: %w", configFileLocation, err)
	}

	names := k.MapKeys(environmentsKey)
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", configFileLocation, ErrNoEnvironments)
	}

	selected := selectEnvironment(k, name)
	if !k.Exists(environmentsKey + "." + selected) {
		return nil, fmt.Errorf("%w: %q (configured: %s)", environment.ErrUnknownEnvironment, selected, strings.Join(names, ", "))
	}

	environments := make(map[string]*domain.Environment, len(names))
	for _, envName := range names {
		section := k.Cut(environmentsKey + "." + envName)
		if envName == selected {
			if err := section.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
				return nil, fmt.Errorf("error loading environment overrides: %w", err)
			}
		}
		parsed, err := parseEnvironment(section)
		if err != nil {
			return nil, fmt.Errorf("environment %q: %w", envName, err)
		}
		environments[envName] = parsed
	}

	logger.Info("Loaded {Count} environments from {ConfigFile}, selected {Environment}", len(environments), configFileLocation, selected)
	return environment.NewHolder(selected, environments)
}

func parserFor(configFileLocation string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(configFileLocation)) {
	case ".json":
		return json.Parser(), nil
	case ".hjson":
		return hjson.Parser(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, configFileLocation)
}

func selectEnvironment(k *koanf.Koanf, name string) string {
	return lang.FirstNonZero(name, os.Getenv(EnvSelectVariable), k.String(defaultEnvironment), environment.DefaultName)
}

// envKey maps CLIENTENV_IDENTITYPROVIDER__CLIENTID to identityprovider.clientid.
func envKey(variable string) string {
	if variable == EnvSelectVariable {
		return ""
	}
	key := strings.TrimPrefix(variable, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

// fileKey is the lower case form used in config files and environment variables.
func fileKey(fieldKey string) string {
	return strings.ToLower(fieldKey)
}

func parseEnvironment(k *koanf.Koanf) (*domain.Environment, error) {
	var missing []string
	for _, key := range domain.FieldKeys() {
		if !k.Exists(fileKey(key)) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	production, err := readBool(k, fileKey(domain.KeyProduction))
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, 5)
	for _, key := range []string{domain.KeyApiServerUrl, domain.KeyIdpDomainPrefix, domain.KeyIdpAudience, domain.KeyIdpClientId, domain.KeyIdpCallbackUrl} {
		value, err := readString(k, fileKey(key))
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return domain.NewEnvironment(
		production,
		values[domain.KeyApiServerUrl],
		domain.NewIdentityProvider(
			values[domain.KeyIdpDomainPrefix],
			values[domain.KeyIdpAudience],
			values[domain.KeyIdpClientId],
			values[domain.KeyIdpCallbackUrl],
		),
	), nil
}

// readString only accepts string values, so numbers, nulls, lists and objects are not silently converted.
func readString(k *koanf.Koanf, key string) (string, error) {
	switch v := k.Get(key).(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("%w: %s is null", ErrInvalidField, key)
	default:
		return "", fmt.Errorf("%w: %s is not a string: %T", ErrInvalidField, key, v)
	}
}

// readBool accepts a boolean from a file or its string form from an environment variable.
func readBool(k *koanf.Koanf, key string) (bool, error) {
	switch v := k.Get(key).(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %s is not a boolean: %q", ErrInvalidField, key, v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: %s is not a boolean", ErrInvalidField, key)
	}
}

// LoadDotEnv reads variables from a .env file into the process environment. A missing file is not an error
// and variables that are already set are left alone.
func LoadDotEnv(filename string) error {
	err := godotenv.Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No {DotEnvFile} found", filename)
		return nil
	}
	return err
}
