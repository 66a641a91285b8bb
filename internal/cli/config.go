package cli

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by every command:
// --db resolves from SQLFIXTURE_DB, --log-data from SQLFIXTURE_LOG_DATA.
const envPrefix = "SQLFIXTURE"

// resolveConfig merges command-line flags over SQLFIXTURE_* environment
// variables. A .env file in the working directory is loaded first and
// never overrides variables already present in the environment. An
// explicitly set flag always wins over its environment variable.
func resolveConfig(fs *pflag.FlagSet) (*viper.Viper, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

// requiredString fetches key and errors when it resolves empty.
func requiredString(v *viper.Viper, key string) (string, error) {
	val := v.GetString(key)
	if val == "" {
		env := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		return "", fmt.Errorf("--%s is required (or set %s)", key, env)
	}
	return val, nil
}
