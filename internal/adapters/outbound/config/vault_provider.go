package config

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values stored in a HashiCorp Vault KV v2 secret.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "atlas").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	switch {
	case server == "":
		return VaultProvider{}, fmt.Errorf("server is required")
	case token == "":
		return VaultProvider{}, fmt.Errorf("token is required")
	case mountPath == "":
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get returns the string stored under key in the configured secret.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return "", err
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	value, ok := secret.Data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret key %s is not a string", key)
	}
	return str, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider layers Vault on top of environment variables as the global
// config provider. It does nothing when VAULT_ADDR is not set.
type InitVaultProvider struct {
	Logger     *log.Logger `resolve:""`
	Server     string      `config:"VAULT_ADDR" default:"-"`
	Token      string      `config:"VAULT_TOKEN" default:"-"`
	MountPath  string      `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string      `config:"VAULT_SECRET_PATH" default:"atlas"`
}

// Initialize registers the composite env+Vault provider as the global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	ivp.Logger.Printf("InitVaultProvider: reading configuration from %s/%s", ivp.MountPath, ivp.SecretPath)

	return ctx, nil
}
