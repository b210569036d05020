package checksum

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/vvka-141/depmap/internal/files/filesystem"
	"github.com/vvka-141/depmap/pkg/depmap"
)

const armoredSignatureHeader = "-----BEGIN PGP SIGNATURE-----"

// LoadKeyring reads an armored or binary OpenPGP public keyring.
func LoadKeyring(fsProvider filesystem.FileSystemProvider, path string) (openpgp.EntityList, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyring %s: %w", path, err)
	}

	keyring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		keyring, err = openpgp.ReadKeyRing(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("keyring %s: %w: %v", path, depmap.ErrInvalidConfig, err)
	}
	if len(keyring) == 0 {
		return nil, fmt.Errorf("keyring %s contains no keys: %w", path, depmap.ErrInvalidConfig)
	}
	return keyring, nil
}

// SignatureVerifier checks payloads against their detached .asc signatures.
type SignatureVerifier struct {
	fsProvider filesystem.FileSystemProvider
	keyring    openpgp.EntityList
}

// NewSignatureVerifier creates a verifier trusting the keys in keyring.
// Panics if fsProvider is nil.
func NewSignatureVerifier(fsProvider filesystem.FileSystemProvider, keyring openpgp.EntityList) *SignatureVerifier {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &SignatureVerifier{fsProvider: fsProvider, keyring: keyring}
}

// Verify checks dir/name against dir/name.asc when that sidecar is listed.
// Unsigned files pass.
func (v *SignatureVerifier) Verify(dir, name string, sidecars []string) error {
	sigName := name + depmap.SuffixSignature
	if !contains(sidecars, sigName) {
		return nil
	}

	sig, err := v.fsProvider.ReadFile(filepath.Join(dir, sigName))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sigName, err)
	}

	f, err := v.fsProvider.OpenFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	//nolint:errcheck // read-only
	defer f.Close()

	if bytes.HasPrefix(bytes.TrimSpace(sig), []byte(armoredSignatureHeader)) {
		_, err = openpgp.CheckArmoredDetachedSignature(v.keyring, f, bytes.NewReader(sig), nil)
	} else {
		_, err = openpgp.CheckDetachedSignature(v.keyring, f, bytes.NewReader(sig), nil)
	}
	if err != nil {
		return fmt.Errorf("%s: %w: %v", name, depmap.ErrSignatureInvalid, err)
	}
	return nil
}
