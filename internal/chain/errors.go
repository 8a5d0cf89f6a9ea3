package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	apperrors "pharmatrace/internal/errors"
)

const serviceName = "chain"

// wrapChainError turns a node or contract failure into an ExternalServiceError whose message is the
// revert reason when one can be decoded.
func wrapChainError(method string, err error) error {
	return apperrors.NewExternalServiceError(serviceName, revertReason(err), fmt.Errorf("%s: %w", method, err))
}

func revertedError(method string, hash common.Hash) error {
	err := fmt.Errorf("transaction %s reverted", hash.Hex())
	return apperrors.NewExternalServiceError(serviceName, err.Error(), fmt.Errorf("%s: %w", method, err))
}

// revertReason extracts the Solidity revert string carried in a JSON-RPC error's data, falling back to
// the error text.
func revertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := decodeRevertData(dataErr.ErrorData()); ok {
			return "execution reverted: " + reason
		}
	}
	return err.Error()
}

func decodeRevertData(data interface{}) (string, bool) {
	var raw []byte
	switch d := data.(type) {
	case string:
		b, err := hexutil.Decode(strings.TrimSpace(d))
		if err != nil {
			return "", false
		}
		raw = b
	case []byte:
		raw = d
	default:
		return "", false
	}
	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return "", false
	}
	return reason, true
}
