package banks

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed defaults/arithmetic.yaml
var defaultBankYAML []byte

// DefaultBank returns the embedded starter quiz. It panics on a broken
// embed, which a unit test catches before shipping.
func DefaultBank() Bank {
	b, err := ParseYAML(defaultBankYAML)
	if err != nil {
		panic(fmt.Sprintf("banks: embedded default bank invalid: %v", err))
	}
	return b
}

// Loader loads question banks from a directory.
type Loader struct {
	Root string
}

// DefaultRoot returns the directory scanned for user-installed banks.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "banks"
	}
	return filepath.Join(home, ".eduquest", "banks")
}

// NewLoader creates a bank loader rooted at a directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all bank files.
// Returns banks sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Bank, error) {
	var banks []Bank

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		bank, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		banks = append(banks, bank)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(banks, func(i, j int) bool {
		return banks[i].ID < banks[j].ID
	})

	return banks, nil
}

// LoadFile loads a single bank file.
func (l *Loader) LoadFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	bank, err := ParseYAML(data)
	if err != nil {
		return Bank{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	bank.FilePath = path
	return bank, nil
}

// LoadByID loads a specific bank by ID.
func (l *Loader) LoadByID(id string) (Bank, error) {
	banks, err := l.LoadAll()
	if err != nil {
		return Bank{}, err
	}

	for _, b := range banks {
		if b.ID == id {
			return b, nil
		}
	}

	return Bank{}, fmt.Errorf("bank not found: %s", id)
}

// ListIDs returns all bank IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	banks, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(banks))
	for i, b := range banks {
		ids[i] = b.ID
	}
	return ids, nil
}
