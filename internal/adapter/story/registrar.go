// Package story talks to the Story Protocol chain: balance lookups and the
// mint-and-register transaction.
package story

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"chatmint-studio/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Backend is what the registrar needs from a chain client. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dial connects to an RPC endpoint.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", rpcURL, err)
	}
	return client, nil
}

// ParsePrivateKey accepts a hex key with or without 0x.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	return key, nil
}

// BalanceReader implements ports.BalanceChecker.
type BalanceReader struct {
	backend Backend
}

// NewBalanceReader creates a balance reader.
func NewBalanceReader(backend Backend) *BalanceReader {
	return &BalanceReader{backend: backend}
}

// BalanceAt returns the latest balance of account in wei.
func (b *BalanceReader) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return b.backend.BalanceAt(ctx, account, nil)
}

// RegistrarConfig holds the contracts and signer for registrations.
type RegistrarConfig struct {
	ChainID               int64
	RegistrationWorkflows common.Address
	IPAssetRegistry       common.Address
	// Timeout bounds submission plus mining. Zero means no extra deadline.
	Timeout time.Duration
}

// Registrar implements ports.ChainRegistrar by calling
// RegistrationWorkflows.mintAndRegisterIp and reading the ipId from the
// IPAssetRegistry's IPRegistered event.
type Registrar struct {
	backend   Backend
	key       *ecdsa.PrivateKey
	signer    common.Address
	cfg       RegistrarConfig
	workflows *bind.BoundContract
	log       zerolog.Logger
}

// NewRegistrar creates a registrar signing with key.
func NewRegistrar(backend Backend, key *ecdsa.PrivateKey, cfg RegistrarConfig, log zerolog.Logger) (*Registrar, error) {
	if key == nil {
		return nil, errors.New("registrar needs a signing key")
	}
	if cfg.RegistrationWorkflows == (common.Address{}) || cfg.IPAssetRegistry == (common.Address{}) {
		return nil, errors.New("registrar needs RegistrationWorkflows and IPAssetRegistry addresses")
	}

	return &Registrar{
		backend:   backend,
		key:       key,
		signer:    crypto.PubkeyToAddress(key.PublicKey),
		cfg:       cfg,
		workflows: bind.NewBoundContract(cfg.RegistrationWorkflows, workflowsABI, backend, backend, backend),
		log:       log,
	}, nil
}

// Signer is the account paying for gas.
func (r *Registrar) Signer() common.Address {
	return r.signer
}

// CheckChain warns when the RPC endpoint serves a different chain than
// configured.
func (r *Registrar) CheckChain(ctx context.Context) {
	id, err := r.backend.ChainID(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("could not read chain id from rpc")
		return
	}
	if id.Int64() != r.cfg.ChainID {
		r.log.Warn().
			Int64("rpc_chain_id", id.Int64()).
			Int64("configured_chain_id", r.cfg.ChainID).
			Msg("rpc endpoint serves a different chain")
	}
}

// MintAndRegisterIP submits the transaction, waits for it to be mined and
// returns the new IP asset id.
func (r *Registrar) MintAndRegisterIP(ctx context.Context, req domain.MintAndRegisterRequest) (*domain.RegistrationReceipt, error) {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	opts, err := bind.NewKeyedTransactorWithChainID(r.key, big.NewInt(r.cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("building transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := r.workflows.Transact(opts, methodMintAndRegisterIP,
		req.SPGNFTContract,
		req.Recipient,
		ipMetadataArg{
			IpMetadataURI:   req.Metadata.IPMetadataURI,
			IpMetadataHash:  req.Metadata.IPMetadataHash,
			NftMetadataURI:  req.Metadata.NFTMetadataURI,
			NftMetadataHash: req.Metadata.NFTMetadataHash,
		},
		req.AllowDuplicates,
	)
	if err != nil {
		return nil, fmt.Errorf("sending %s: %w", methodMintAndRegisterIP, err)
	}

	r.log.Info().
		Str("tx_hash", tx.Hash().Hex()).
		Str("signer", r.signer.Hex()).
		Str("recipient", req.Recipient.Hex()).
		Msg("registration transaction sent")

	receipt, err := bind.WaitMined(ctx, r.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("registration transaction reverted: tx=%s", tx.Hash().Hex())
	}

	ev, err := r.findIPRegistered(receipt.Logs)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", tx.Hash().Hex(), err)
	}

	r.log.Info().
		Str("tx_hash", tx.Hash().Hex()).
		Str("ip_id", ev.IpId.Hex()).
		Str("token_id", ev.TokenId.String()).
		Uint64("block", receipt.BlockNumber.Uint64()).
		Msg("ip asset registered on-chain")

	return &domain.RegistrationReceipt{
		AssetID:         ev.IpId.Hex(),
		TransactionHash: tx.Hash().Hex(),
	}, nil
}

func (r *Registrar) findIPRegistered(logs []*types.Log) (*ipRegisteredEvent, error) {
	return parseIPRegistered(r.cfg.IPAssetRegistry, logs)
}

// parseIPRegistered returns the first IPRegistered event emitted by registry.
func parseIPRegistered(registry common.Address, logs []*types.Log) (*ipRegisteredEvent, error) {
	contract := bind.NewBoundContract(registry, registryABI, nil, nil, nil)
	eventID := registryABI.Events[eventIPRegistered].ID

	for _, l := range logs {
		if l == nil || l.Address != registry || len(l.Topics) == 0 || l.Topics[0] != eventID {
			continue
		}
		var ev ipRegisteredEvent
		if err := contract.UnpackLog(&ev, eventIPRegistered, *l); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", eventIPRegistered, err)
		}
		return &ev, nil
	}
	return nil, fmt.Errorf("no %s event in receipt", eventIPRegistered)
}
