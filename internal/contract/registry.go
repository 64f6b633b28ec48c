package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ErrContractNotFound is returned when a contract is not found.
var ErrContractNotFound = errors.New("contract not found")

// Entry is a deployed token known to the CLI.
type Entry struct {
	Name      string `json:"name"`
	Network   string `json:"network"`
	Address   string `json:"address"`
	Kind      string `json:"kind"`
	DeployTx  string `json:"deploy_tx,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Addr returns the entry address.
func (e *Entry) Addr() common.Address { return common.HexToAddress(e.Address) }

// Registry stores and retrieves contract entries.
type Registry struct {
	path      string
	contracts map[string]*Entry // key: "name@network"
}

// NewRegistry creates a Registry backed by a JSON file.
func NewRegistry(path string) *Registry {
	return &Registry{
		path:      path,
		contracts: make(map[string]*Entry),
	}
}

// Load reads stored contracts from disk.
func (r *Registry) Load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing %s: %w", r.path, err)
	}

	for i := range entries {
		e := &entries[i]
		r.contracts[key(e.Name, e.Network)] = e
	}
	return nil
}

// Save writes all contracts to disk.
func (r *Registry) Save() error {
	all := r.All()
	entries := make([]Entry, len(all))
	for i, e := range all {
		entries[i] = *e
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o600)
}

// Add adds or updates a contract entry. The address is stored checksummed
// and the kind defaults to the TangleToken built-in.
func (r *Registry) Add(e *Entry) error {
	if !common.IsHexAddress(e.Address) {
		return fmt.Errorf("invalid address %q", e.Address)
	}
	e.Address = common.HexToAddress(e.Address).Hex()
	if e.Kind == "" {
		e.Kind = KindTangleToken
	}
	if _, ok := GetBuiltin(e.Kind); !ok {
		return fmt.Errorf("unknown contract kind %q", e.Kind)
	}
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	r.contracts[key(e.Name, e.Network)] = e
	return nil
}

// Get returns a contract by name and network.
func (r *Registry) Get(name, network string) (*Entry, error) {
	e, ok := r.contracts[key(name, network)]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrContractNotFound, name, network)
	}
	return e, nil
}

// Resolve turns a registered name or a literal hex address into an address.
func (r *Registry) Resolve(nameOrAddr, network string) (common.Address, error) {
	if common.IsHexAddress(nameOrAddr) {
		return common.HexToAddress(nameOrAddr), nil
	}
	e, err := r.Get(nameOrAddr, network)
	if err != nil {
		return common.Address{}, err
	}
	return e.Addr(), nil
}

// GetByName returns all entries for a contract name across all networks.
func (r *Registry) GetByName(name string) []*Entry {
	var out []*Entry
	for _, e := range r.All() {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// All returns all registered contracts sorted by name, then network.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, 0, len(r.contracts))
	for _, e := range r.contracts {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(key(out[i].Name, out[i].Network), key(out[j].Name, out[j].Network)) < 0
	})
	return out
}

// Remove deletes a contract entry.
func (r *Registry) Remove(name, network string) error {
	k := key(name, network)
	if _, ok := r.contracts[k]; !ok {
		return fmt.Errorf("%w: %s on %s", ErrContractNotFound, name, network)
	}
	delete(r.contracts, k)
	return nil
}

func key(name, network string) string {
	return name + "@" + network
}
