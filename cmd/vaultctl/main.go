package main

import (
	"os"

	"github.com/aussiebroadwan/vaultshare/internal/vaultctl"
)

func main() {
	if err := vaultctl.Execute(); err != nil {
		os.Exit(1)
	}
}
