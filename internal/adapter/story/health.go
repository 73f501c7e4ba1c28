package story

import (
	"context"
	"fmt"
)

// ChainCheck reports the RPC endpoint as unhealthy when it is unreachable
// or serves a different chain than the one registrations are signed for.
type ChainCheck struct {
	backend Backend
	chainID int64
}

func NewChainCheck(backend Backend, chainID int64) *ChainCheck {
	return &ChainCheck{backend: backend, chainID: chainID}
}

func (c *ChainCheck) Name() string { return "story_rpc" }

func (c *ChainCheck) Ping(ctx context.Context) error {
	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("reading chain id: %w", err)
	}
	if id.Int64() != c.chainID {
		return fmt.Errorf("rpc serves chain %d, registrations expect %d", id.Int64(), c.chainID)
	}
	return nil
}
