package storage

import (
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/address"
)

// MemoryAddressBook is an in-memory AddressBook.
type MemoryAddressBook struct {
	mu    sync.RWMutex
	addrs map[string]string // identity key -> address as added
}

func NewMemoryAddressBook() *MemoryAddressBook {
	return &MemoryAddressBook{addrs: make(map[string]string)}
}

func identityKey(addr string) (string, error) {
	id, ok := address.Identify(addr)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedAddress, addr)
	}
	return id.Key(), nil
}

func (s *MemoryAddressBook) Add(addr string) error {
	key, err := identityKey(addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addrs[key] = addr
	return nil
}

func (s *MemoryAddressBook) Remove(addr string) error {
	key, err := identityKey(addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.addrs, key)
	return nil
}

func (s *MemoryAddressBook) Contains(addr string) (bool, error) {
	key, err := identityKey(addr)
	if err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.addrs[key]
	return ok, nil
}

func (s *MemoryAddressBook) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, 0, len(s.addrs))
	for _, addr := range s.addrs {
		result = append(result, addr)
	}
	sort.Strings(result)
	return result, nil
}

// MemoryKeyStore is an in-memory KeyStore. Keys are stored compressed.
type MemoryKeyStore struct {
	mu   sync.RWMutex
	keys map[string]bool
}

func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{keys: make(map[string]bool)}
}

// NormalizePublicKey parses a hex SEC1 public key and returns it as compressed hex.
func NormalizePublicKey(publicKey string) (string, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	key, err := btcec.ParsePubKey(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return hex.EncodeToString(key.SerializeCompressed()), nil
}

func (s *MemoryKeyStore) Add(publicKey string) error {
	key, err := NormalizePublicKey(publicKey)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = true
	return nil
}

func (s *MemoryKeyStore) Remove(publicKey string) error {
	key, err := NormalizePublicKey(publicKey)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	return nil
}

func (s *MemoryKeyStore) Contains(publicKey string) (bool, error) {
	key, err := NormalizePublicKey(publicKey)
	if err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys[key], nil
}

func (s *MemoryKeyStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, 0, len(s.keys))
	for key := range s.keys {
		result = append(result, key)
	}
	sort.Strings(result)
	return result, nil
}
