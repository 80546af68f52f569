package common

import (
	"errors"
	"math/big"
	"strings"
)

// ErrWrongBigIntString wrong big int string
var ErrWrongBigIntString = errors.New("wrong big int string")

// GetBigIntFromStr parse decimal or hexadecimal string to big int
func GetBigIntFromStr(str string) (*big.Int, error) {
	if str == "" {
		return nil, ErrWrongBigIntString
	}
	base := 10
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
		base = 16
	}
	bi, ok := new(big.Int).SetString(str, base)
	if !ok {
		return nil, ErrWrongBigIntString
	}
	return bi, nil
}

// GetUint64FromStr parse string to uint64
func GetUint64FromStr(str string) (uint64, error) {
	bi, err := GetBigIntFromStr(str)
	if err != nil {
		return 0, err
	}
	if !bi.IsUint64() {
		return 0, ErrWrongBigIntString
	}
	return bi.Uint64(), nil
}

// GetBigInt get big int from data segment [start, start+size)
func GetBigInt(data []byte, start, size uint64) *big.Int {
	length := uint64(len(data))
	if start >= length {
		return new(big.Int)
	}
	end := start + size
	if end > length {
		end = length
	}
	return new(big.Int).SetBytes(data[start:end])
}

// IsEqualIgnoreCase compare strings ignoring case
func IsEqualIgnoreCase(s1, s2 string) bool {
	return strings.EqualFold(s1, s2)
}
