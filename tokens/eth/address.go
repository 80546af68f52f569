package eth

import (
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// IsValidAddress check address. All lower or all upper hex is accepted,
// mixed case must be a valid EIP-55 checksum.
func IsValidAddress(address string) bool {
	if !ethcommon.IsHexAddress(address) {
		return false
	}
	unprefixed := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	hasUpper := strings.ContainsAny(unprefixed, "ABCDEF")
	hasLower := strings.ContainsAny(unprefixed, "abcdef")
	if hasUpper && hasLower {
		return unprefixed == ethcommon.HexToAddress(address).Hex()[2:]
	}
	return true
}
