package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/adapter/custody"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

const executeLegacyMethod = "executeLegacy"

var chainTransactionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aevia_chain_execute_legacy_total",
		Help: "Direct executeLegacy transactions by chain and outcome",
	},
	[]string{"chain_id", "outcome"},
)

// Client is the RPC surface used by the executor. *ethclient.Client satisfies it.
type Client interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// DialFunc opens an RPC client for url.
type DialFunc func(ctx context.Context, url string) (Client, error)

func dialEthclient(ctx context.Context, url string) (Client, error) {
	return ethclient.DialContext(ctx, url)
}

// Executor implements ports.ChainExecutor: it sends executeLegacy from the
// operator account and waits for the receipt.
type Executor struct {
	cfg      config.ChainConfig
	operator *custody.TransactionSigner
	dial     DialFunc
	log      zerolog.Logger
}

// NewExecutor creates an executor that dials chains through go-ethereum.
func NewExecutor(cfg config.ChainConfig, operator *custody.TransactionSigner, log zerolog.Logger) *Executor {
	return NewExecutorWithDialer(cfg, operator, dialEthclient, log)
}

// NewExecutorWithDialer creates an executor with a custom RPC dialer.
func NewExecutorWithDialer(cfg config.ChainConfig, operator *custody.TransactionSigner, dial DialFunc, log zerolog.Logger) *Executor {
	return &Executor{
		cfg:      cfg,
		operator: operator,
		dial:     dial,
		log:      log.With().Str("component", "chain").Logger(),
	}
}

// ExecuteLegacy releases a standard legacy on chain and returns the tx hash.
func (e *Executor) ExecuteLegacy(ctx context.Context, l *domain.Legacy, contract *domain.Contract) (string, error) {
	chainLabel := fmt.Sprintf("%d", l.ChainID)

	rpcURL, ok := e.cfg.RPCURL(l.ChainID)
	if !ok {
		return "", apperror.ErrChainNotConfigured(l.ChainID)
	}

	data, err := PackExecuteLegacy(contract.ABI, l)
	if err != nil {
		return "", err
	}

	client, err := e.dial(ctx, rpcURL)
	if err != nil {
		chainTransactionsTotal.WithLabelValues(chainLabel, "unavailable").Inc()
		return "", apperror.ErrChainUnavailable(fmt.Errorf("dial chain %d: %w", l.ChainID, err))
	}
	defer client.Close()

	from := common.HexToAddress(e.operator.Address())
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		chainTransactionsTotal.WithLabelValues(chainLabel, "unavailable").Inc()
		return "", apperror.ErrChainUnavailable(fmt.Errorf("pending nonce: %w", err))
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		chainTransactionsTotal.WithLabelValues(chainLabel, "unavailable").Inc()
		return "", apperror.ErrChainUnavailable(fmt.Errorf("gas price: %w", err))
	}

	to := common.HexToAddress(contract.Address)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      domain.GasLimitForChain(l.ChainID),
		To:       &to,
		Value:    new(big.Int),
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(l.ChainID)), e.operator.PrivateKey())
	if err != nil {
		return "", apperror.ErrSigningFailure(fmt.Errorf("sign executeLegacy: %w", err))
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		chainTransactionsTotal.WithLabelValues(chainLabel, "send_failed").Inc()
		return "", apperror.ErrChainUnavailable(fmt.Errorf("send executeLegacy: %w", err))
	}

	hash := signed.Hash().Hex()
	e.log.Info().
		Str("legacy_id", l.ID.String()).
		Int64("chain_id", l.ChainID).
		Str("tx_hash", hash).
		Uint64("gas", signed.Gas()).
		Msg("executeLegacy sent")

	receipt, err := e.waitReceipt(ctx, client, signed.Hash())
	if err != nil {
		chainTransactionsTotal.WithLabelValues(chainLabel, "receipt_timeout").Inc()
		return hash, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		chainTransactionsTotal.WithLabelValues(chainLabel, "reverted").Inc()
		return hash, apperror.ErrTransactionReverted(hash)
	}

	chainTransactionsTotal.WithLabelValues(chainLabel, "confirmed").Inc()
	e.log.Info().
		Str("legacy_id", l.ID.String()).
		Str("tx_hash", hash).
		Uint64("block", receipt.BlockNumber.Uint64()).
		Msg("executeLegacy confirmed")
	return hash, nil
}

func (e *Executor) waitReceipt(ctx context.Context, client Client, hash common.Hash) (*types.Receipt, error) {
	interval := e.cfg.ReceiptPollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	waitCtx := ctx
	if e.cfg.ReceiptTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, e.cfg.ReceiptTimeout)
		defer cancel()
	}

	fetch := func() (*types.Receipt, error) {
		receipt, err := client.TransactionReceipt(waitCtx, hash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				e.log.Warn().Err(err).Str("tx_hash", hash.Hex()).Msg("receipt lookup failed")
			}
			return nil, err
		}
		return receipt, nil
	}

	receipt, err := backoff.RetryWithData(fetch, backoff.WithContext(backoff.NewConstantBackOff(interval), waitCtx))
	if err != nil {
		return nil, apperror.ErrReceiptTimeout(hash.Hex())
	}
	return receipt, nil
}

// PackExecuteLegacy encodes the executeLegacy call for l. Arguments are
// converted to the Go types the contract ABI declares.
func PackExecuteLegacy(contractABI []byte, l *domain.Legacy) ([]byte, error) {
	parsed, err := abi.JSON(strings.NewReader(string(contractABI)))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parse contract abi: %w", err))
	}
	method, ok := parsed.Methods[executeLegacyMethod]
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("contract abi has no %s method", executeLegacyMethod))
	}

	signature := ""
	if l.Signature != nil {
		signature = *l.Signature
	}
	raw := []string{
		l.BlockchainID,
		fmt.Sprintf("%d", int(l.TokenType)),
		l.TokenAddress,
		l.EffectiveTokenID(),
		l.Amount,
		l.Wallet,
		l.HeirWallet,
		signature,
	}
	if len(method.Inputs) != len(raw) {
		return nil, apperror.InternalError(fmt.Errorf("%s expects %d arguments, have %d", executeLegacyMethod, len(method.Inputs), len(raw)))
	}

	args := make([]any, len(raw))
	for i, in := range method.Inputs {
		v, err := convertArg(in.Type, raw[i])
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("%s argument %s: %w", executeLegacyMethod, in.Name, err))
		}
		args[i] = v
	}

	data, err := parsed.Pack(executeLegacyMethod, args...)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("pack %s: %w", executeLegacyMethod, err))
	}
	return data, nil
}
