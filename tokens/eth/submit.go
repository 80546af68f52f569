package eth

import (
	"context"
	"math/big"

	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// SubmitHop broadcast the bridge transaction of one hop and return its
// hash. Does not wait for confirmation, that is the status tracker's
// job. A native sentinel token address selects the native bridge call
// with the amount as tx value, anything else the token bridge call.
func (b *Bridge) SubmitHop(ctx context.Context, hop *tokens.Hop, amount *big.Int, recipient string) (txHash string, err error) {
	if b.signer == nil {
		return "", tokens.ErrSigningUnavailable
	}
	if !router.IsSupported(hop.FromChainID) || !router.IsSupported(hop.ToChainID) {
		return "", tokens.ErrUnknownChain
	}
	if hop.BridgeContract == "" {
		return "", tokens.ErrUnsupportedHop
	}
	if err = tokens.CheckTransferAmount(amount); err != nil {
		return "", err
	}
	if !IsValidAddress(recipient) {
		return "", tokens.ErrWrongRecipient
	}
	if !hop.IsNativeToken() && !IsValidAddress(hop.TokenAddress) {
		return "", tokens.ErrMissTokenAddress
	}

	var input []byte
	value := new(big.Int)
	if hop.IsNativeToken() {
		input = buildNativeBridgeInput(recipient, hop.ToChainID)
		value = amount
	} else {
		input = buildTokenBridgeInput(hop.TokenAddress, recipient, amount, hop.ToChainID)
	}

	txHash, err = b.signer.SendTransaction(ctx, hop.FromChainID, hop.BridgeContract, input, value)
	if err != nil {
		log.Error("submit hop failed",
			"fromChainID", hop.FromChainID, "toChainID", hop.ToChainID,
			"bridgeContract", hop.BridgeContract, "err", err)
		return "", err
	}

	log.Info("submit hop success",
		"fromChainID", hop.FromChainID, "toChainID", hop.ToChainID,
		"bridgeContract", hop.BridgeContract, "native", hop.IsNativeToken(),
		"amount", amount, "recipient", recipient, "txHash", txHash)
	return txHash, nil
}
