package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// kvReader reads one KV v2 secret. Implemented by *api.KVv2.
type kvReader interface {
	Get(ctx context.Context, secretPath string) (*api.KVSecret, error)
}

// VaultProvider serves configuration values from a single KV v2 secret,
// e.g. secret/foodapp holding DB_PASS, NEO4J_PASSWORD and PAYSTACK_SECRET.
// The secret is read once and cached for the life of the process.
type VaultProvider struct {
	kv         kvReader
	secretPath string

	mu     sync.Mutex
	values map[string]string
}

// NewVaultProvider connects to the Vault server at address with token.
// mountPath is the KV v2 mount and secretPath the secret within it.
func NewVaultProvider(address, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case address == "":
		return nil, errors.New("vault address is required")
	case token == "":
		return nil, errors.New("vault token is required")
	case mountPath == "":
		return nil, errors.New("vault mount path is required")
	case secretPath == "":
		return nil, errors.New("vault secret path is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = address

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return newVaultProvider(client.KVv2(mountPath), secretPath), nil
}

func newVaultProvider(kv kvReader, secretPath string) *VaultProvider {
	return &VaultProvider{kv: kv, secretPath: secretPath}
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

// load reads the secret on first use. Failed reads are retried on the next call.
func (vp *VaultProvider) load(ctx context.Context) (map[string]string, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.values != nil {
		return vp.values, nil
	}

	secret, err := vp.kv.Get(ctx, vp.secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	values := make(map[string]string, len(secret.Data))
	for key, raw := range secret.Data {
		value, err := stringValue(raw)
		if err != nil {
			return nil, fmt.Errorf("vault secret %s key %s: %w", vp.secretPath, key, err)
		}
		values[key] = value
	}
	vp.values = values
	return values, nil
}

// stringValue converts a scalar KV value to its config string form.
func stringValue(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool, float64, int, int64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider layers Vault under the environment as a config source.
// Setting VAULT_ADDR to "-" keeps the environment as the only source.
type InitVaultProvider struct {
	Address    string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"foodapp"`
}

// Initialize installs the composite env + Vault provider globally.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Address == "-" {
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Address, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
