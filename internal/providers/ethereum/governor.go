package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/logger"
)

// governorABI covers the three Governor contract entry points the service
// uses: the proposal counter read and the two submission writes
const governorABI = `[
	{"constant":true,"inputs":[],"name":"proposalCount","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"proposalId","type":"uint256"},{"name":"description","type":"string"},{"name":"deadline","type":"uint256"}],"name":"submitProposal","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"bool"}],"name":"castVote","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`

// Config holds Governor client configuration
type Config struct {
	// ContractAddress is the Governor contract address
	ContractAddress string
	// PrivateKey is the hex-encoded submitter key
	PrivateKey string
	// GasLimit caps submission gas when estimation fails (0 = require estimation)
	GasLimit uint64
	// SubmitAttempts bounds retries per submission
	SubmitAttempts uint64
	// SubmitBackoff is the fixed wait between submission attempts
	SubmitBackoff time.Duration
}

// GovernorClient is the adapter for the on-chain Governor contract. It is the
// external authority for proposal numbering and the submission target for
// proposals and votes. Failures here must never corrupt local state; callers
// treat a failed submission as an abandoned reservation.
//
//go:generate mockgen -source=governor.go -destination=../../mocks/governor.go -package=mocks -mock_names=GovernorClient=MockGovernorClient
type GovernorClient interface {
	// HighestID returns the contract's proposal counter
	HighestID(ctx context.Context) (int64, error)

	// SubmitProposal submits a proposal under the reserved identifier and
	// returns the transaction hash
	SubmitProposal(ctx context.Context, id int64, description string, deadline time.Time) (string, error)

	// SubmitVote submits a vote on a proposal and returns the transaction hash
	SubmitVote(ctx context.Context, proposalID int64, support bool) (string, error)

	// Close closes the underlying connection
	Close()
}

type governorClient struct {
	client   adapter.EthClient
	contract common.Address
	key      *ecdsa.PrivateKey
	from     common.Address
	abi      abi.ABI
	cfg      Config
}

// NewGovernorClient creates a new Governor contract client
func NewGovernorClient(cfg Config, client adapter.EthClient) (GovernorClient, error) {
	parsedABI, err := abi.JSON(strings.NewReader(governorABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse governor ABI: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	if cfg.SubmitAttempts == 0 {
		cfg.SubmitAttempts = 3
	}
	if cfg.SubmitBackoff == 0 {
		cfg.SubmitBackoff = 2 * time.Second
	}

	return &governorClient{
		client:   client,
		contract: common.HexToAddress(cfg.ContractAddress),
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		abi:      parsedABI,
		cfg:      cfg,
	}, nil
}

// HighestID returns the contract's proposal counter
func (c *governorClient) HighestID(ctx context.Context) (int64, error) {
	data, err := c.abi.Pack("proposalCount")
	if err != nil {
		return 0, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.contract,
		Data: data,
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to call contract: %w", err)
	}

	var count *big.Int
	if err := c.abi.UnpackIntoInterface(&count, "proposalCount", result); err != nil {
		return 0, fmt.Errorf("failed to unpack result: %w", err)
	}
	if !count.IsInt64() {
		return 0, fmt.Errorf("proposal count out of range: %s", count.String())
	}

	return count.Int64(), nil
}

// SubmitProposal submits a proposal under the reserved identifier
func (c *governorClient) SubmitProposal(ctx context.Context, id int64, description string, deadline time.Time) (string, error) {
	data, err := c.abi.Pack("submitProposal",
		big.NewInt(id),
		description,
		big.NewInt(deadline.Unix()))
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	return c.transactWithRetry(ctx, data)
}

// SubmitVote submits a vote on a proposal
func (c *governorClient) SubmitVote(ctx context.Context, proposalID int64, support bool) (string, error) {
	data, err := c.abi.Pack("castVote", big.NewInt(proposalID), support)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	return c.transactWithRetry(ctx, data)
}

// transactWithRetry sends the calldata with a bounded, fixed-interval retry.
// A caller-level timeout on ctx bounds the whole attempt sequence.
func (c *governorClient) transactWithRetry(ctx context.Context, data []byte) (string, error) {
	var txHash string

	operation := func() error {
		hash, err := c.transact(ctx, data)
		if err != nil {
			logger.WarnCtx(ctx, "Governor submission attempt failed", zap.Error(err))
			return err
		}
		txHash = hash
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.SubmitBackoff), c.cfg.SubmitAttempts-1),
		ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("failed to submit governor transaction: %w", err)
	}

	return txHash, nil
}

// transact signs and sends a single transaction carrying the calldata
func (c *governorClient) transact(ctx context.Context, data []byte) (string, error) {
	nonce, err := c.client.PendingNonceAt(ctx, c.from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From: c.from,
		To:   &c.contract,
		Data: data,
	})
	if err != nil {
		if c.cfg.GasLimit == 0 {
			return "", fmt.Errorf("failed to estimate gas: %w", err)
		}
		gasLimit = c.cfg.GasLimit
	}

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get chain id: %w", err)
	}

	tx := types.NewTransaction(nonce, c.contract, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return signedTx.Hash().Hex(), nil
}

// Close closes the underlying connection
func (c *governorClient) Close() {
	c.client.Close()
}
