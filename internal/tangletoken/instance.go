package tangletoken

import (
	"time"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// Instance is a TangleToken deployed at one address, reached through one
// provider.
type Instance struct {
	address  common.Address
	provider chain.Provider
	tx       *chain.Transactor
	log      *zerolog.Logger
	txOpts   []chain.Option
}

// Option configures an Instance.
type Option func(*Instance)

// WithLogger sets the logger used for debug output.
func WithLogger(log *zerolog.Logger) Option {
	return func(t *Instance) {
		if log == nil {
			return
		}
		t.log = log
		t.txOpts = append(t.txOpts, chain.WithLogger(log))
	}
}

// WithReceiptTimeout bounds how long SendAndWait polls for a receipt.
func WithReceiptTimeout(d time.Duration) Option {
	return func(t *Instance) {
		t.txOpts = append(t.txOpts, chain.WithReceiptTimeout(d))
	}
}

// WithPollInterval sets the delay between receipt polls.
func WithPollInterval(d time.Duration) Option {
	return func(t *Instance) {
		t.txOpts = append(t.txOpts, chain.WithPollInterval(d))
	}
}

// New binds the token at address to provider.
func New(address common.Address, provider chain.Provider, opts ...Option) *Instance {
	nop := zerolog.Nop()
	t := &Instance{address: address, provider: provider, log: &nop}
	for _, opt := range opts {
		opt(t)
	}
	t.tx = chain.NewTransactor(provider, t.txOpts...)
	return t
}

// Address is the token contract address.
func (t *Instance) Address() common.Address { return t.address }

// Provider is the provider calls and transactions go through.
func (t *Instance) Provider() chain.Provider { return t.provider }

// At returns a copy of t bound to another address.
func (t *Instance) At(address common.Address) *Instance {
	c := *t
	c.address = address
	return &c
}

// WithProvider returns a copy of t that talks to provider instead.
func (t *Instance) WithProvider(provider chain.Provider) *Instance {
	c := *t
	c.provider = provider
	c.tx = chain.NewTransactor(provider, c.txOpts...)
	return &c
}
