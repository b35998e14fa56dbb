// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Galactic Foundry
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"context"
	"errors"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/galactic-foundry/fleetstake/fault"
	"github.com/galactic-foundry/fleetstake/pda"
)

// state fetch tuning
const (
	rateLimitState = rate.Limit(10) // requests per second
	rateBurstState = 5
	stateCacheTTL  = 30 * time.Second
	cacheCleanup   = 5 * time.Minute
)

// FactionLookup - external player-faction registry
//
// consumed, never implemented here
type FactionLookup interface {
	PlayerFactionAccount(ctx context.Context, player solana.PublicKey) (solana.PublicKey, error)
}

// narrow slice of the RPC surface, for stubbing in tests
type accountReader interface {
	ReadAccount(ctx context.Context, address solana.PublicKey) ([]byte, error)
}

// adapt the solana RPC client to the reader interface
type rpcReader struct {
	client *rpc.Client
}

func (r rpcReader) ReadAccount(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	result, err := r.client.GetAccountInfo(ctx, address)
	if nil != err {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fault.ErrAccountNotFound
		}
		return nil, err
	}
	if nil == result || nil == result.Value {
		return nil, fault.ErrAccountNotFound
	}
	return result.Value.Data.GetBinary(), nil
}

// Client - read-only state access plus descriptor convenience
//
// The client never touches the assembly path: builders stay pure.
// Fetches are rate limited and TTL cached; protocol state changes at
// most once per slot so a short cache costs nothing.
type Client struct {
	program  Program
	reader   accountReader
	factions FactionLookup
	limiter  *rate.Limiter
	cache    *cache.Cache
}

// NewClient - create a client over an RPC endpoint
//
// factions may be nil when InitialDeposit is never used through the
// client
func NewClient(program Program, rpcClient *rpc.Client, factions FactionLookup) *Client {
	return newClient(program, rpcReader{client: rpcClient}, factions)
}

func newClient(program Program, reader accountReader, factions FactionLookup) *Client {
	return &Client{
		program:  program,
		reader:   reader,
		factions: factions,
		limiter:  rate.NewLimiter(rateLimitState, rateBurstState),
		cache:    cache.New(stateCacheTTL, cacheCleanup),
	}
}

// Program - the immutable program configuration in use
func (c *Client) Program() Program {
	return c.program
}

// fetch raw account data, honouring the limiter
func (c *Client) fetchAccount(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	if err := c.limiter.Wait(ctx); nil != err {
		if nil != ctx.Err() {
			return nil, ctx.Err()
		}
		return nil, fault.ErrRateLimiting
	}

	return c.reader.ReadAccount(ctx, address)
}

// ScoreVars - fetch and decode the protocol configuration singleton
func (c *Client) ScoreVars(ctx context.Context) (*ScoreVars, error) {
	address, _, err := pda.ScoreVars(c.program.id)
	if nil != err {
		return nil, err
	}
	if hit, ok := c.cache.Get(address.String()); ok {
		return hit.(*ScoreVars), nil
	}

	data, err := c.fetchAccount(ctx, address)
	if nil != err {
		return nil, err
	}
	vars, err := DecodeScoreVars(data)
	if nil != err {
		return nil, err
	}
	c.cache.SetDefault(address.String(), vars)
	return vars, nil
}

// ScoreVarsShip - fetch and decode one ship class configuration
func (c *Client) ScoreVarsShip(ctx context.Context, shipMint solana.PublicKey) (*ScoreVarsShip, error) {
	address, _, err := pda.ScoreVarsShip(c.program.id, shipMint)
	if nil != err {
		return nil, err
	}
	if hit, ok := c.cache.Get(address.String()); ok {
		return hit.(*ScoreVarsShip), nil
	}

	data, err := c.fetchAccount(ctx, address)
	if nil != err {
		return nil, err
	}
	ship, err := DecodeScoreVarsShip(data)
	if nil != err {
		return nil, err
	}
	c.cache.SetDefault(address.String(), ship)
	return ship, nil
}

// ShipStaking - fetch and decode one staking position
//
// positions mutate with every resource operation, so these reads
// bypass the cache
func (c *Client) ShipStaking(ctx context.Context, player solana.PublicKey, shipMint solana.PublicKey) (*ShipStaking, error) {
	address, _, err := pda.ShipStaking(c.program.id, player, shipMint)
	if nil != err {
		return nil, err
	}

	data, err := c.fetchAccount(ctx, address)
	if nil != err {
		return nil, err
	}
	return DecodeShipStaking(data)
}

// InitialDeposit - resolve the player's faction account through the
// external registry, then assemble the pure descriptor
func (c *Client) InitialDeposit(ctx context.Context, player solana.PublicKey, shipMint solana.PublicKey, playerShipTokenAccount solana.PublicKey, shipQuantity uint64) (*Descriptor, error) {
	if nil == c.factions {
		return nil, fault.ErrNoFactionLookup
	}
	faction, err := c.factions.PlayerFactionAccount(ctx, player)
	if nil != err {
		return nil, err
	}
	return c.program.InitialDeposit(player, faction, shipMint, playerShipTokenAccount, shipQuantity)
}
