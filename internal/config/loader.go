package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loaderOptions holds optional explicit file paths.
type loaderOptions struct {
	configFile string
	envFile    string
}

// Option is a functional option for Load.
type Option func(*loaderOptions)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// load resolves config.yml and .env files, layers environment variables on
// top, and unmarshals the merged result into cfg.
func load(serviceName string, cfg interface{}, opts ...Option) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.configFile == "" {
		o.configFile = findFile(configSearchPaths(serviceName))
	}
	if o.envFile == "" {
		o.envFile = findFile(envSearchPaths(serviceName))
	}

	v := viper.New()

	// YAML file is the base layer.
	if o.configFile != "" && exists(o.configFile) {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config file %s: %w", o.configFile, err)
		}
	}

	// .env feeds the process environment before env binding.
	if o.envFile != "" && exists(o.envFile) {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("env file %s: %w", o.envFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config for %s: %w", serviceName, err)
	}
	return nil
}

func configSearchPaths(serviceName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", serviceName),
		fmt.Sprintf("../cmd/%s/config.yml", serviceName),
		"./config/config.yml",
		"./config.yml",
	}
}

func envSearchPaths(serviceName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/.env", serviceName),
		fmt.Sprintf(".env.%s", serviceName),
		"./.env",
	}
}

func findFile(paths []string) string {
	for _, p := range paths {
		if exists(p) {
			return p
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// bindEnvVars maps UPPER_SNAKE environment variables onto viper's nested
// dotted keys so SERVER_PORT reaches server.port and AUTH_JWT_SECRET
// reaches auth.jwt_secret.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, key := range envKeyVariants(pair[0]) {
			v.Set(key, pair[1])
		}
	}
}

// envKeyVariants generates the nested key spellings an environment variable
// may address. AUTH_JWT_SECRET yields auth_jwt_secret, auth.jwt.secret,
// auth.jwt_secret, and auth.jwt.secret's progressive prefixes.
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{
		lower,
		strings.ReplaceAll(lower, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, k := range variants {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
