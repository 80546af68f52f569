package eth

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// ensure KeystoreSigner impl tokens.Signer
var _ tokens.Signer = (*KeystoreSigner)(nil)

// KeystoreSigner signs and broadcasts transactions with a key loaded
// from an encrypted keystore file
type KeystoreSigner struct {
	provider *Provider
	privKey  *ecdsa.PrivateKey
	address  ethcommon.Address
}

// NewKeystoreSigner load the keystore file decrypted with the password
// file content
func NewKeystoreSigner(keystoreFile, passwordFile string, provider *Provider) (*KeystoreSigner, error) {
	keyJSON, err := os.ReadFile(keystoreFile)
	if err != nil {
		return nil, errors.Wrapf(err, "read keystore file '%v'", keystoreFile)
	}
	passData, err := os.ReadFile(passwordFile)
	if err != nil {
		return nil, errors.Wrapf(err, "read password file '%v'", passwordFile)
	}
	key, err := keystore.DecryptKey(keyJSON, strings.TrimSpace(string(passData)))
	if err != nil {
		return nil, errors.Wrap(err, "decrypt keystore")
	}
	address := crypto.PubkeyToAddress(key.PrivateKey.PublicKey)
	log.Info("load keystore signer success", "address", address.Hex())
	return &KeystoreSigner{
		provider: provider,
		privKey:  key.PrivateKey,
		address:  address,
	}, nil
}

// Address signer address
func (s *KeystoreSigner) Address() string {
	return s.address.Hex()
}

// SendTransaction sign a contract call and broadcast it.
// Uses a dynamic fee tx when the chain reports EIP-1559 fee fields,
// a legacy tx otherwise.
func (s *KeystoreSigner) SendTransaction(ctx context.Context, chainID uint64, to string, calldata []byte, value *big.Int) (string, error) {
	nonce, err := s.provider.GetNonce(ctx, chainID, s.address.Hex())
	if err != nil {
		return "", err
	}
	feeData, err := s.provider.GetFeeData(ctx, chainID)
	if err != nil {
		return "", err
	}

	toAddr := ethcommon.HexToAddress(to)
	gasLimit := router.GetFeePolicy().HopGasLimit
	chainIDBig := new(big.Int).SetUint64(chainID)

	var tx *ethtypes.Transaction
	if feeData.MaxFeePerGas != nil {
		tx = ethtypes.NewTx(&ethtypes.DynamicFeeTx{
			ChainID:   chainIDBig,
			Nonce:     nonce,
			GasTipCap: feeData.MaxPriorityFeePerGas,
			GasFeeCap: feeData.MaxFeePerGas,
			Gas:       gasLimit,
			To:        &toAddr,
			Value:     value,
			Data:      calldata,
		})
	} else {
		tx = ethtypes.NewTransaction(nonce, toAddr, value, gasLimit, feeData.GasPrice, calldata)
	}

	signedTx, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(chainIDBig), s.privKey)
	if err != nil {
		return "", errors.Wrap(err, "sign tx")
	}
	rawTx, err := signedTx.MarshalBinary()
	if err != nil {
		return "", errors.Wrap(err, "encode signed tx")
	}

	txHash, err := s.provider.SendRawTransaction(ctx, chainID, rawTx)
	if err != nil {
		return "", err
	}
	log.Info("sign and send transaction success",
		"chainID", chainID, "to", to, "nonce", nonce, "value", value, "txHash", txHash)
	return txHash, nil
}
