package lexicon

import "sync/atomic"

// Provider hands out the current Lexicon snapshot and allows atomic
// replacement on reload. Snapshots themselves are never mutated; consumers
// read Current once per operation and work against that value.
type Provider struct {
	current atomic.Pointer[Lexicon]
}

// NewProvider creates a provider serving lex. A nil lex means the built-ins.
func NewProvider(lex *Lexicon) *Provider {
	if lex == nil {
		lex = Default()
	}
	p := &Provider{}
	p.current.Store(lex)
	return p
}

// Current returns the active snapshot.
func (p *Provider) Current() *Lexicon {
	return p.current.Load()
}

// Swap replaces the active snapshot. Nil is ignored so a failed reload can
// never blank out the tables.
func (p *Provider) Swap(lex *Lexicon) {
	if lex != nil {
		p.current.Store(lex)
	}
}
