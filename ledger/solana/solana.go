// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package solana

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/mr-tron/base58"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/ratelimit"
	"github.com/bitmark-inc/geonft/treasurerecord"
)

// defaults
const (
	defaultCommitment   = "confirmed"
	defaultBlockhashTTL = 20 // seconds
	blockhashCacheKey   = "blockhash"
)

// Configuration - Solana settings
type Configuration struct {
	URL          string  `gluamapper:"url" json:"url"`
	ProgramId    string  `gluamapper:"program_id" json:"program_id"`
	PayerKeyFile string  `gluamapper:"payer_key_file" json:"payer_key_file"`
	Commitment   string  `gluamapper:"commitment" json:"commitment"`
	RequestRate  float64 `gluamapper:"request_rate" json:"request_rate"`
	BlockhashTTL int     `gluamapper:"blockhash_ttl" json:"blockhash_ttl"`
}

// Client - submits records to one program through one node
type Client struct {
	log         *logger.L
	url         string
	program     []byte
	payer       ed25519.PrivateKey
	commitment  string
	httpClient  *http.Client
	limiter     *rate.Limiter
	blockhashes *cache.Cache
	requestId   uint64
}

// New - create a client from its configuration
func New(configuration *Configuration) (*Client, error) {
	program, err := base58.Decode(configuration.ProgramId)
	if nil != err || PublicKeySize != len(program) {
		return nil, fmt.Errorf("invalid program id: %q", configuration.ProgramId)
	}

	payer, err := LoadPayerKey(configuration.PayerKeyFile)
	if nil != err {
		return nil, fmt.Errorf("payer key file: %s  error: %w", configuration.PayerKeyFile, err)
	}

	commitment := configuration.Commitment
	if "" == commitment {
		commitment = defaultCommitment
	}

	ttl := configuration.BlockhashTTL
	if ttl <= 0 {
		ttl = defaultBlockhashTTL
	}
	expiry := time.Duration(ttl) * time.Second

	return &Client{
		log:         logger.New("solana"),
		url:         configuration.URL,
		program:     program,
		payer:       payer,
		commitment:  commitment,
		httpClient:  &http.Client{},
		limiter:     ratelimit.New(configuration.RequestRate, 1),
		blockhashes: cache.New(expiry, 2*expiry),
	}, nil
}

// Payer - the base58 payer address
func (c *Client) Payer() string {
	return EncodePublicKey(c.payer.Public().(ed25519.PublicKey))
}

// EncodePublicKey - base58 account address
func EncodePublicKey(publicKey ed25519.PublicKey) string {
	return base58.Encode(publicKey)
}

// Connect - probe the node
func (c *Client) Connect(ctx context.Context) error {
	var info struct {
		Epoch     uint64 `json:"epoch"`
		SlotIndex uint64 `json:"slotIndex"`
	}
	err := c.call(ctx, "getEpochInfo", nil, &info)
	if nil != err {
		c.log.Errorf("connect: %s  error: %s", c.url, err)
		return fmt.Errorf("%w: %s", fault.LedgerServiceUnreached, err)
	}
	c.log.Debugf("connected: %s  epoch: %d  slot index: %d", c.url, info.Epoch, info.SlotIndex)
	return nil
}

// Submit - send a packed record as a transaction
func (c *Client) Submit(ctx context.Context, packed treasurerecord.Packed) (string, error) {
	blockhash, err := c.latestBlockhash(ctx)
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.LedgerServiceFailed, err)
	}

	transaction, signature := buildTransaction(c.payer, c.program, blockhash, packed)
	txId := base58.Encode(signature)

	params := []interface{}{
		base64.StdEncoding.EncodeToString(transaction),
		map[string]string{
			"encoding":            "base64",
			"preflightCommitment": c.commitment,
		},
	}

	var result string
	err = c.call(ctx, "sendTransaction", params, &result)
	if nil != err {
		// the blockhash may have expired
		c.blockhashes.Delete(blockhashCacheKey)
		return "", fmt.Errorf("%w: %s", fault.LedgerServiceFailed, err)
	}
	if result != txId {
		c.log.Warnf("node returned signature: %s  expected: %s", result, txId)
	}

	c.log.Infof("sent: %s  type: %d  bytes: %d", txId, packed.Type(), len(packed))
	return txId, nil
}

// fetch a recent blockhash, reusing a cached one while it is fresh
func (c *Client) latestBlockhash(ctx context.Context) ([]byte, error) {
	if cached, found := c.blockhashes.Get(blockhashCacheKey); found {
		return cached.([]byte), nil
	}

	var result struct {
		Value struct {
			Blockhash            string `json:"blockhash"`
			LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
		} `json:"value"`
	}
	params := []interface{}{
		map[string]string{"commitment": c.commitment},
	}
	err := c.call(ctx, "getLatestBlockhash", params, &result)
	if nil != err {
		return nil, err
	}

	blockhash, err := base58.Decode(result.Value.Blockhash)
	if nil != err || HashSize != len(blockhash) {
		return nil, fmt.Errorf("invalid blockhash: %q", result.Value.Blockhash)
	}

	c.blockhashes.SetDefault(blockhashCacheKey, blockhash)
	return blockhash, nil
}
