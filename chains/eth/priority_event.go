package eth

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/sisu-network/zeyes/types"
)

// NewPriorityRequest is emitted by the rollup contract when an outer-chain
// transaction enqueues a priority operation. The serial id in it is the only
// identifier the rollup network knows the operation by.
const rollupEventsABI = `[{"anonymous":false,"inputs":[
{"indexed":false,"name":"sender","type":"address"},
{"indexed":false,"name":"serialId","type":"uint64"},
{"indexed":false,"name":"opType","type":"uint8"},
{"indexed":false,"name":"pubData","type":"bytes"},
{"indexed":false,"name":"expirationBlock","type":"uint256"}],
"name":"NewPriorityRequest","type":"event"}]`

var (
	rollupAbi            abi.ABI
	newPriorityRequestID common.Hash
)

func init() {
	var err error
	rollupAbi, err = abi.JSON(strings.NewReader(rollupEventsABI))
	if err != nil {
		panic(err)
	}

	newPriorityRequestID = rollupAbi.Events["NewPriorityRequest"].ID
}

// ExtractSerialID scans an inclusion receipt for the rollup contract's
// NewPriorityRequest event and returns the priority operation serial id.
// Exactly one matching log is expected; anything else means the submission
// path is broken and the operation can never be polled.
func ExtractSerialID(receipt *ethtypes.Receipt) (uint64, error) {
	for _, entry := range receipt.Logs {
		if len(entry.Topics) == 0 || entry.Topics[0] != newPriorityRequestID {
			continue
		}

		values, err := rollupAbi.Unpack("NewPriorityRequest", entry.Data)
		if err != nil {
			return 0, types.NewExtractionError(receipt.TxHash.String(),
				"malformed NewPriorityRequest log")
		}

		serialID, ok := values[1].(uint64)
		if !ok {
			return 0, types.NewExtractionError(receipt.TxHash.String(),
				"serial id field has unexpected type")
		}

		return serialID, nil
	}

	return 0, types.NewExtractionError(receipt.TxHash.String(),
		"no NewPriorityRequest log in receipt")
}
