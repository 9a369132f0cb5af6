package eth

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/sisu-network/zeyes/types"
)

func packPriorityRequest(t *testing.T, serialID uint64) []byte {
	data, err := rollupAbi.Events["NewPriorityRequest"].Inputs.Pack(
		common.Address{1},
		serialID,
		uint8(1),
		[]byte{0xde, 0xad},
		big.NewInt(10_000),
	)
	require.Nil(t, err)

	return data
}

func TestExtractSerialID(t *testing.T) {
	receipt := &ethtypes.Receipt{
		TxHash: common.Hash{1},
		Logs: []*ethtypes.Log{
			{
				// Unrelated event, must be skipped.
				Topics: []common.Hash{{2}},
			},
			{
				Topics: []common.Hash{newPriorityRequestID},
				Data:   packPriorityRequest(t, 42),
			},
		},
	}

	serialID, err := ExtractSerialID(receipt)
	require.Nil(t, err)
	require.Equal(t, uint64(42), serialID)
}

func TestExtractSerialID_NoMatchingLog(t *testing.T) {
	receipt := &ethtypes.Receipt{
		TxHash: common.Hash{1},
		Logs: []*ethtypes.Log{
			{
				Topics: []common.Hash{{2}},
			},
		},
	}

	_, err := ExtractSerialID(receipt)
	require.NotNil(t, err)
	require.IsType(t, &types.ExtractionError{}, err)
}

func TestExtractSerialID_MalformedLog(t *testing.T) {
	receipt := &ethtypes.Receipt{
		TxHash: common.Hash{1},
		Logs: []*ethtypes.Log{
			{
				Topics: []common.Hash{newPriorityRequestID},
				Data:   []byte{1, 2, 3},
			},
		},
	}

	_, err := ExtractSerialID(receipt)
	require.NotNil(t, err)
	require.IsType(t, &types.ExtractionError{}, err)
}
