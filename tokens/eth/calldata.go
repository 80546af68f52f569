package eth

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// bridge contract method selectors and log topics
var (
	// BridgeOutNative(address to, uint256 toChainID) payable
	bridgeOutNativeFuncHash = crypto.Keccak256([]byte("bridgeOutNative(address,uint256)"))[:4]
	// BridgeOutToken(address token, address to, uint256 amount, uint256 toChainID)
	bridgeOutTokenFuncHash = crypto.Keccak256([]byte("bridgeOutToken(address,address,uint256,uint256)"))[:4]

	// LogBridgeOut(address token, address from, address to, uint amount, uint fromChainID, uint toChainID)
	LogBridgeOutTopic = ethcommon.BytesToHash(
		crypto.Keccak256([]byte("LogBridgeOut(address,address,address,uint256,uint256,uint256)")))
)

func packAddress(address string) []byte {
	return ethcommon.LeftPadBytes(ethcommon.HexToAddress(address).Bytes(), 32)
}

func packBigInt(bi *big.Int) []byte {
	if bi == nil {
		bi = new(big.Int)
	}
	return ethcommon.LeftPadBytes(bi.Bytes(), 32)
}

func packUint64(value uint64) []byte {
	return packBigInt(new(big.Int).SetUint64(value))
}

// buildNativeBridgeInput calldata of a native asset bridge call, the
// bridged amount rides in the tx value
func buildNativeBridgeInput(recipient string, toChainID uint64) []byte {
	input := make([]byte, 0, 4+2*32)
	input = append(input, bridgeOutNativeFuncHash...)
	input = append(input, packAddress(recipient)...)
	input = append(input, packUint64(toChainID)...)
	return input
}

// buildTokenBridgeInput calldata of an erc20 token bridge call
func buildTokenBridgeInput(token, recipient string, amount *big.Int, toChainID uint64) []byte {
	input := make([]byte, 0, 4+4*32)
	input = append(input, bridgeOutTokenFuncHash...)
	input = append(input, packAddress(token)...)
	input = append(input, packAddress(recipient)...)
	input = append(input, packBigInt(amount)...)
	input = append(input, packUint64(toChainID)...)
	return input
}
