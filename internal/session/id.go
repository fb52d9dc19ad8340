package session

import (
	"encoding/base64"
	"fmt"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/utils"
)

const installIDBytes = 32

// NewInstallID generates the identifier of a new client installation.
func NewInstallID() (string, error) {
	id, err := utils.RandomString(installIDBytes)
	if err != nil {
		return "", fmt.Errorf("session: failed to generate install id: %w", err)
	}
	return id, nil
}

// ValidInstallID reports whether id looks like a value NewInstallID produced.
func ValidInstallID(id string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	return err == nil && len(raw) == installIDBytes
}
