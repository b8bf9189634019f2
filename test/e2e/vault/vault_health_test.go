//go:build e2e

package vault_test

import (
	"testing"

	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

func TestLivezEndpoint(t *testing.T) {
	client := vaultsdk.NewSDKClient(setupVaultContainer(t))

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

func TestReadyzEndpoint(t *testing.T) {
	client := vaultsdk.NewSDKClient(setupVaultContainer(t))

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	if health.Checks == nil || health.Checks.Database != "ok" {
		t.Fatalf("expected database check ok, got %+v", health.Checks)
	}
}
