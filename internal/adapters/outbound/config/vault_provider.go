package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider serves secrets such as LLM_API_KEY and DB_PASS from one
// HashiCorp Vault KV v2 secret. The secret is read on the first lookup and kept
// for the life of the process.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	mu     sync.Mutex
	values map[string]string
}

// NewVaultProvider creates a VaultProvider for the secret at mountPath/secretPath
// (e.g. "secret" and "filmrecommender").
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get returns the value stored under key in the secret.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	values, err := vp.load(ctx)
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}
	return value, nil
}

// load reads the secret once. Failed reads are not remembered, so a later lookup retries.
func (vp *VaultProvider) load(ctx context.Context) (map[string]string, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.values != nil {
		return vp.values, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	values := make(map[string]string, len(secret.Data))
	for k, v := range secret.Data {
		values[k] = stringify(v)
	}
	vp.values = values
	return values, nil
}

var _ config.Provider = (*VaultProvider)(nil)
