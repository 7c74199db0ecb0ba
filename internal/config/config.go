// Package config carga y valida la configuración YAML del provider.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dropDatabas3/oidcore/internal/oidc"
)

type Config struct {
	// Bloque app (opcional en YAML). Si no está, queda vacío.
	App struct {
		// dev | staging | prod
		Env string `yaml:"app_env"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	// Provider es la metadata OIDC del servidor. Se valida en oidc.NewProvider,
	// no acá: config solo transporta.
	Provider struct {
		Issuer                            string   `yaml:"issuer"`
		AuthorizationEndpoint             string   `yaml:"authorization_endpoint"`
		TokenEndpoint                     string   `yaml:"token_endpoint"`
		UserinfoEndpoint                  string   `yaml:"userinfo_endpoint"`
		JWKSURI                           string   `yaml:"jwks_uri"`
		ResponseTypesSupported            []string `yaml:"response_types_supported"`
		SubjectTypesSupported             []string `yaml:"subject_types_supported"`
		IDTokenSigningAlgValuesSupported  []string `yaml:"id_token_signing_alg_values_supported"`
		ScopesSupported                   []string `yaml:"scopes_supported"`
		ClaimsSupported                   []string `yaml:"claims_supported"`
		TokenEndpointAuthMethodsSupported []string `yaml:"token_endpoint_auth_methods_supported"`
		GrantTypesSupported               []string `yaml:"grant_types_supported"`
		CodeChallengeMethodsSupported     []string `yaml:"code_challenge_methods_supported"`
	} `yaml:"provider"`

	Codes struct {
		TTL    string `yaml:"ttl"`    // duración, ej "10m"
		Length int    `yaml:"length"` // bytes aleatorios del código
	} `yaml:"codes"`

	Store struct {
		Kind  string `yaml:"kind"` // "memory" | "redis"
		Redis struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"store"`
}

// Load lee el YAML, aplica defaults y overrides de entorno.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	// sane defaults
	if c.Codes.TTL == "" {
		c.Codes.TTL = "10m"
	}
	if c.Codes.Length == 0 {
		c.Codes.Length = 32
	}
	if c.Store.Kind == "" {
		c.Store.Kind = "memory"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.applyEnvOverrides()

	if _, err := time.ParseDuration(c.Codes.TTL); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyEnvOverrides: pisa config.yaml con variables de entorno.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := getEnvStr("OIDC_ISSUER"); ok {
		c.Provider.Issuer = v
	}
	if v, ok := getEnvStr("STORE_KIND"); ok {
		c.Store.Kind = strings.ToLower(v)
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Store.Redis.Addr = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Store.Redis.DB = v
	}
	if v, ok := getEnvStr("AUTH_CODE_TTL"); ok {
		c.Codes.TTL = v
	}
}

// ProviderConfig arma la metadata para oidc.NewProvider.
func (c *Config) ProviderConfig() oidc.ProviderConfig {
	p := c.Provider
	return oidc.ProviderConfig{
		Issuer:                            p.Issuer,
		AuthorizationEndpoint:             p.AuthorizationEndpoint,
		TokenEndpoint:                     p.TokenEndpoint,
		UserinfoEndpoint:                  p.UserinfoEndpoint,
		JWKSURI:                           p.JWKSURI,
		ResponseTypesSupported:            p.ResponseTypesSupported,
		SubjectTypesSupported:             p.SubjectTypesSupported,
		IDTokenSigningAlgValuesSupported:  p.IDTokenSigningAlgValuesSupported,
		ScopesSupported:                   p.ScopesSupported,
		ClaimsSupported:                   p.ClaimsSupported,
		TokenEndpointAuthMethodsSupported: p.TokenEndpointAuthMethodsSupported,
		GrantTypesSupported:               p.GrantTypesSupported,
		CodeChallengeMethodsSupported:     p.CodeChallengeMethodsSupported,
	}
}

// CodeTTL retorna el TTL de códigos ya parseado.
// Load ya validó el formato; ante cualquier duda cae al default.
func (c *Config) CodeTTL() time.Duration {
	d, err := time.ParseDuration(c.Codes.TTL)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}
