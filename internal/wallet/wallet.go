package wallet

import (
	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// Generator defines the interface for address generation per chain.
// Each chain family implements this to handle its own derivation logic.
type Generator interface {
	// Chain returns which blockchain this generator supports
	Chain() models.Chain

	// GenerateFromSeed derives an address from HD seed bytes at the given index
	GenerateFromSeed(seed []byte, index uint32) (*models.DerivedAddress, error)
}
