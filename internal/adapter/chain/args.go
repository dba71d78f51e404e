package chain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// convertArg turns a stored string into the Go value abi.Pack expects for t.
func convertArg(t abi.Type, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch t.T {
	case abi.UintTy, abi.IntTy:
		// Stored integers are decimal; a leading zero is not an octal prefix.
		n, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", value)
		}
		return sizedInt(t, n)
	case abi.AddressTy:
		if !common.IsHexAddress(value) {
			return nil, fmt.Errorf("%q is not an address", value)
		}
		return common.HexToAddress(value), nil
	case abi.BytesTy:
		if value == "" {
			return []byte{}, nil
		}
		b, err := hexutil.Decode(ensure0x(value))
		if err != nil {
			return nil, fmt.Errorf("decode bytes: %w", err)
		}
		return b, nil
	case abi.StringTy:
		return value, nil
	case abi.BoolTy:
		return value == "true" || value == "1", nil
	default:
		return nil, fmt.Errorf("unsupported abi type %s", t.String())
	}
}

func sizedInt(t abi.Type, n *big.Int) (any, error) {
	if t.T == abi.UintTy && n.Sign() < 0 {
		return nil, fmt.Errorf("negative value %s for %s", n, t.String())
	}
	bits := t.Size
	if t.T == abi.IntTy {
		bits--
	}
	if n.BitLen() > bits {
		return nil, fmt.Errorf("value %s overflows %s", n, t.String())
	}
	if t.T == abi.UintTy {
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		}
		return n, nil
	}
	switch t.Size {
	case 8:
		return int8(n.Int64()), nil
	case 16:
		return int16(n.Int64()), nil
	case 32:
		return int32(n.Int64()), nil
	case 64:
		return n.Int64(), nil
	}
	return n, nil
}

func ensure0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}
