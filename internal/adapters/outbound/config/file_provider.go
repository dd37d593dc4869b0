package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileProvider provides configuration values from a YAML file.
// Nested keys are flattened with "_" and upper-cased, so
//
//	scoring:
//	  semantic_weight: 0.6
//
// is served as SCORING_SEMANTIC_WEIGHT.
type FileProvider struct {
	values map[string]string
}

// NewFileProvider loads the YAML file at path.
func NewFileProvider(path string) (FileProvider, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return FileProvider{}, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	values := make(map[string]string, len(k.Keys()))
	for key, value := range k.All() {
		values[envKey(key)] = stringify(value)
	}
	return FileProvider{values: values}, nil
}

// Get returns the value of key, or an error when the file does not define it.
func (fp FileProvider) Get(_ context.Context, key string) (string, error) {
	value, ok := fp.values[strings.ToUpper(key)]
	if !ok {
		return "", fmt.Errorf("config file does not contain key %s", key)
	}
	return value, nil
}

var _ config.Provider = (*FileProvider)(nil)

func envKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func stringify(value any) string {
	switch v := value.(type) {
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

// InitConfigProviders builds the global config provider chain:
// environment variables first, then the optional YAML file, then the optional Vault secret.
// A value of "-" disables a source.
type InitConfigProviders struct {
	ConfigFile      string `config:"CONFIG_FILE" default:"-"`
	VaultServer     string `config:"VAULT_ADDR" default:"-"`
	VaultToken      string `config:"VAULT_TOKEN" default:"-"`
	VaultMountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	VaultSecretPath string `config:"VAULT_SECRET_PATH" default:"filmrecommender"`
}

// Initialize registers the composite provider as the global config provider.
func (icp InitConfigProviders) Initialize(ctx context.Context) (context.Context, error) {
	var provider config.Provider = config.EnvVarProvider{}

	if icp.ConfigFile != "-" && icp.ConfigFile != "" {
		fileProvider, err := NewFileProvider(icp.ConfigFile)
		if err != nil {
			return ctx, err
		}
		provider = config.NewCompositeProvider(provider, fileProvider)
	}

	if icp.VaultServer != "-" && icp.VaultServer != "" {
		vaultProvider, err := NewVaultProvider(icp.VaultServer, icp.VaultToken, icp.VaultMountPath, icp.VaultSecretPath)
		if err != nil {
			return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
		}
		provider = config.NewCompositeProvider(provider, vaultProvider)
	}

	config.SetGlobalProvider(provider)
	return ctx, nil
}
