package params

import (
	"math/big"

	"github.com/crosshop/CrossChain-Bridger/tokens"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// CheckConfig check bridge config, and cache parsed values
func (config *BridgeConfig) CheckConfig(isServer bool) (err error) {
	if config.Identifier == "" {
		return errors.New("must config nonempty 'Identifier'")
	}
	if err = config.checkChains(); err != nil {
		return err
	}
	if err = config.checkBridges(); err != nil {
		return err
	}
	if err = config.checkTokens(); err != nil {
		return err
	}
	if err = config.checkFeePolicy(); err != nil {
		return err
	}
	if isServer {
		if config.Server == nil || config.Server.APIServer == nil {
			return errors.New("server mode must config 'Server.APIServer'")
		}
	}
	if config.Signer != nil && config.Signer.KeystoreFile != "" && config.Signer.PasswordFile == "" {
		return errors.New("config 'Signer.KeystoreFile' without 'Signer.PasswordFile'")
	}
	return nil
}

func (config *BridgeConfig) checkChains() error {
	if len(config.Chains) == 0 {
		return errors.New("must config at least one chain in 'Chains'")
	}
	seen := make(map[uint64]struct{}, len(config.Chains))
	for _, chain := range config.Chains {
		if chain.ChainID == 0 {
			return errors.New("chain with zero 'ChainID'")
		}
		if _, exist := seen[chain.ChainID]; exist {
			return errors.Errorf("duplicate chain id %v", chain.ChainID)
		}
		seen[chain.ChainID] = struct{}{}
		if chain.Name == "" {
			return errors.Errorf("chain %v without 'Name'", chain.ChainID)
		}
		if chain.LatencyMinutes == 0 {
			return errors.Errorf("chain %v without 'LatencyMinutes'", chain.ChainID)
		}
		baseGasFee, ok := new(big.Int).SetString(chain.BaseGasFee, 10)
		if !ok || baseGasFee.Sign() < 0 {
			return errors.Errorf("chain %v with wrong 'BaseGasFee' %v", chain.ChainID, chain.BaseGasFee)
		}
		chain.baseGasFee = baseGasFee
		if chain.GasPriceFloor != "" {
			floor, ok := new(big.Int).SetString(chain.GasPriceFloor, 10)
			if !ok || floor.Sign() < 0 {
				return errors.Errorf("chain %v with wrong 'GasPriceFloor' %v", chain.ChainID, chain.GasPriceFloor)
			}
			chain.gasPriceFloor = floor
		}
	}
	return nil
}

func (config *BridgeConfig) checkBridges() error {
	type edgeKey struct{ from, to uint64 }
	seen := make(map[edgeKey]struct{}, len(config.Bridges))
	for _, edge := range config.Bridges {
		if edge.FromChainID == edge.ToChainID {
			return errors.Errorf("bridge edge with same source and target chain %v", edge.FromChainID)
		}
		if GetChainConfig(edge.FromChainID) == nil {
			return errors.Errorf("bridge edge from unknown chain %v", edge.FromChainID)
		}
		if GetChainConfig(edge.ToChainID) == nil {
			return errors.Errorf("bridge edge to unknown chain %v", edge.ToChainID)
		}
		if !ethcommon.IsHexAddress(edge.Contract) {
			return errors.Errorf("bridge edge %v->%v with wrong 'Contract' %v", edge.FromChainID, edge.ToChainID, edge.Contract)
		}
		key := edgeKey{edge.FromChainID, edge.ToChainID}
		if _, exist := seen[key]; exist {
			return errors.Errorf("duplicate bridge edge %v->%v", edge.FromChainID, edge.ToChainID)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (config *BridgeConfig) checkTokens() error {
	for symbol, addrs := range config.Tokens {
		if symbol == "" {
			return errors.New("token with empty symbol")
		}
		for chainIDStr, addr := range addrs {
			chainID, ok := new(big.Int).SetString(chainIDStr, 10)
			if !ok || !chainID.IsUint64() || GetChainConfig(chainID.Uint64()) == nil {
				return errors.Errorf("token %v on unknown chain %v", symbol, chainIDStr)
			}
			if !ethcommon.IsHexAddress(addr) {
				return errors.Errorf("token %v with wrong address %v on chain %v", symbol, addr, chainIDStr)
			}
		}
	}
	return nil
}

func (config *BridgeConfig) checkFeePolicy() error {
	policy := config.FeePolicy
	if policy == nil {
		policy = &FeePolicyConfig{}
		config.FeePolicy = policy
	}
	if policy.FeeRateBasisPoints == 0 {
		policy.FeeRateBasisPoints = 10
	}
	if policy.FeeRateBasisPoints >= tokens.FeeRateDenominator {
		return errors.Errorf("wrong 'FeeRateBasisPoints' %v", policy.FeeRateBasisPoints)
	}
	if policy.DirectSlippage == 0 {
		policy.DirectSlippage = 0.1
	}
	if policy.MultiHopSlippage == 0 {
		policy.MultiHopSlippage = 0.3
	}
	if policy.HopGasLimit == 0 {
		policy.HopGasLimit = DefaultHopGasLimit
	}
	if policy.HubChainID != 0 && GetChainConfig(policy.HubChainID) == nil {
		return errors.Errorf("unknown 'HubChainID' %v", policy.HubChainID)
	}
	return nil
}
