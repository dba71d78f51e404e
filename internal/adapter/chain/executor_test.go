package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/adapter/custody"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOperatorKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const testProtocolABI = `[{
	"type": "function",
	"name": "executeLegacy",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "legacyId", "type": "uint256"},
		{"name": "tokenType", "type": "uint8"},
		{"name": "token", "type": "address"},
		{"name": "tokenId", "type": "uint256"},
		{"name": "amount", "type": "uint256"},
		{"name": "wallet", "type": "address"},
		{"name": "heir", "type": "address"},
		{"name": "signature", "type": "bytes"}
	],
	"outputs": []
}]`

type fakeClient struct {
	mu              sync.Mutex
	sent            []*types.Transaction
	receiptStatus   uint64
	pendingReceipts int
	receiptCalls    int
	sendErr         error
}

func (f *fakeClient) PendingNonceAt(context.Context, common.Address) (uint64, error) { return 9, nil }

func (f *fakeClient) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(25_000_000_000), nil
}

func (f *fakeClient) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeClient) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptCalls++
	if f.receiptCalls <= f.pendingReceipts {
		return nil, ethereum.NotFound
	}
	return &types.Receipt{Status: f.receiptStatus, BlockNumber: big.NewInt(100)}, nil
}

func (f *fakeClient) Close() {}

func testLegacy(chainID int64) *domain.Legacy {
	sig := "0xabcd"
	return &domain.Legacy{
		ID:           uuid.New(),
		BlockchainID: "123456789012345678901234567890",
		ChainID:      chainID,
		TokenType:    domain.TokenTypeERC20,
		TokenAddress: "0x455e53CBB86018Ac2B8092FdCd39d8444aFFC3F6",
		Amount:       "1000000000000000000",
		Wallet:       "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		HeirWallet:   "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		Signature:    &sig,
	}
}

func testContract(chainID int64) *domain.Contract {
	return &domain.Contract{
		Name:    domain.ProtocolContractName,
		ChainID: chainID,
		Address: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		ABI:     []byte(testProtocolABI),
	}
}

func newTestExecutor(t *testing.T, fc *fakeClient) *Executor {
	t.Helper()
	operator, err := custody.NewTransactionSignerFromHex(testOperatorKey)
	require.NoError(t, err)

	cfg := config.ChainConfig{
		RPCURLs: map[string]string{
			"1":     "http://eth.local",
			"5000":  "http://mantle.local",
			"43114": "http://avax.local",
		},
		ReceiptTimeout:      time.Second,
		ReceiptPollInterval: time.Millisecond,
	}
	dial := func(context.Context, string) (Client, error) { return fc, nil }
	return NewExecutorWithDialer(cfg, operator, dial, zerolog.Nop())
}

func TestExecutor_GasLimitPerChain(t *testing.T) {
	tests := []struct {
		chainID int64
		wantGas uint64
	}{
		{domain.ChainMantleMainnet, 300_000_000},
		{domain.ChainEthereumMainnet, 2_000_000},
		{domain.ChainAvalancheMainnet, 2_000_000},
	}

	for _, tt := range tests {
		t.Run(domain.ChainName(tt.chainID), func(t *testing.T) {
			fc := &fakeClient{receiptStatus: types.ReceiptStatusSuccessful}
			e := newTestExecutor(t, fc)

			hash, err := e.ExecuteLegacy(context.Background(), testLegacy(tt.chainID), testContract(tt.chainID))
			require.NoError(t, err)
			require.Len(t, fc.sent, 1)

			tx := fc.sent[0]
			assert.Equal(t, tx.Hash().Hex(), hash)
			assert.Equal(t, tt.wantGas, tx.Gas())
			assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
			assert.Equal(t, uint64(9), tx.Nonce())
			assert.Equal(t, int64(25_000_000_000), tx.GasPrice().Int64())
			assert.Equal(t, tt.chainID, tx.ChainId().Int64())

			sender, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
			require.NoError(t, err)
			assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", sender.Hex())
		})
	}
}

func TestExecutor_WaitsForReceipt(t *testing.T) {
	fc := &fakeClient{receiptStatus: types.ReceiptStatusSuccessful, pendingReceipts: 3}
	e := newTestExecutor(t, fc)

	_, err := e.ExecuteLegacy(context.Background(), testLegacy(1), testContract(1))
	require.NoError(t, err)
	assert.Equal(t, 4, fc.receiptCalls)
}

func TestExecutor_Reverted(t *testing.T) {
	fc := &fakeClient{receiptStatus: types.ReceiptStatusFailed}
	e := newTestExecutor(t, fc)

	hash, err := e.ExecuteLegacy(context.Background(), testLegacy(1), testContract(1))
	require.Error(t, err)
	assert.NotEmpty(t, hash)
	assert.ErrorIs(t, err, apperror.ErrTransactionReverted(""))
}

func TestExecutor_ChainNotConfigured(t *testing.T) {
	fc := &fakeClient{}
	e := newTestExecutor(t, fc)

	_, err := e.ExecuteLegacy(context.Background(), testLegacy(137), testContract(137))
	assert.ErrorIs(t, err, apperror.ErrChainNotConfigured(0))
	assert.Empty(t, fc.sent)
}

func TestExecutor_SendFailure(t *testing.T) {
	fc := &fakeClient{sendErr: errors.New("nonce too low")}
	e := newTestExecutor(t, fc)

	_, err := e.ExecuteLegacy(context.Background(), testLegacy(1), testContract(1))
	assert.ErrorIs(t, err, apperror.ErrChainUnavailable(nil))
}

func TestPackExecuteLegacy(t *testing.T) {
	tokenID := "77"
	l := testLegacy(1)
	l.TokenType = domain.TokenTypeERC721
	l.TokenID = &tokenID

	data, err := PackExecuteLegacy([]byte(testProtocolABI), l)
	require.NoError(t, err)

	parsed, err := abi.JSON(stringsReader(testProtocolABI))
	require.NoError(t, err)
	method := parsed.Methods[executeLegacyMethod]
	assert.Equal(t, method.ID, data[:4])

	values, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	require.Len(t, values, 8)
	assert.Equal(t, uint8(1), values[1])
	assert.Equal(t, int64(77), values[3].(*big.Int).Int64())
	assert.Equal(t, common.HexToAddress(l.HeirWallet), values[6])
	assert.Equal(t, []byte{0xab, 0xcd}, values[7])
}

func TestPackExecuteLegacy_TokenIDIgnoredForFungible(t *testing.T) {
	tokenID := "77"
	l := testLegacy(1)
	l.TokenID = &tokenID

	data, err := PackExecuteLegacy([]byte(testProtocolABI), l)
	require.NoError(t, err)

	parsed, err := abi.JSON(stringsReader(testProtocolABI))
	require.NoError(t, err)
	values, err := parsed.Methods[executeLegacyMethod].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Zero(t, values[3].(*big.Int).Sign())
}

func TestPackExecuteLegacy_LeadingZerosAreDecimal(t *testing.T) {
	tokenID := "0077"
	l := testLegacy(1)
	l.TokenType = domain.TokenTypeERC721
	l.TokenID = &tokenID
	l.Amount = "010"

	data, err := PackExecuteLegacy([]byte(testProtocolABI), l)
	require.NoError(t, err)

	parsed, err := abi.JSON(stringsReader(testProtocolABI))
	require.NoError(t, err)
	values, err := parsed.Methods[executeLegacyMethod].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, int64(77), values[3].(*big.Int).Int64())
	assert.Equal(t, int64(10), values[4].(*big.Int).Int64())
}

func TestPackExecuteLegacy_BadABI(t *testing.T) {
	_, err := PackExecuteLegacy([]byte(`[{"type":"function","name":"other","inputs":[]}]`), testLegacy(1))
	assert.Error(t, err)

	_, err = PackExecuteLegacy([]byte(`not json`), testLegacy(1))
	assert.Error(t, err)
}
