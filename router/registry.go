// Package router holds the chain registry and plans bridge routes over
// its edge graph.
package router

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/crosshop/CrossChain-Bridger/common"
	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// UnknownChainName sentinel name of unregistered chains
const UnknownChainName = "Unknown"

// registry is filled once by InitRegistry and read-only afterwards
var (
	chainConfigs   = make(map[uint64]*params.ChainConfig)
	bridgeEdges    = make(map[uint64]mapset.Set)          // fromChainID -> set of toChainID
	bridgeContract = make(map[uint64]map[uint64]string)   // fromChainID -> toChainID -> contract
	tokenAddresses = make(map[string]map[uint64]string)   // SYMBOL -> chainID -> address
	allChainIDs    []uint64
	feePolicy      = &params.FeePolicyConfig{}
)

// InitRegistry init the chain registry from loaded config.
// Must be called once at startup before any other call in this package.
func InitRegistry(config *params.BridgeConfig) {
	chainConfigs = make(map[uint64]*params.ChainConfig, len(config.Chains))
	allChainIDs = make([]uint64, 0, len(config.Chains))
	for _, chain := range config.Chains {
		chainConfigs[chain.ChainID] = chain
		allChainIDs = append(allChainIDs, chain.ChainID)
	}
	sort.Slice(allChainIDs, func(i, j int) bool { return allChainIDs[i] < allChainIDs[j] })

	bridgeEdges = make(map[uint64]mapset.Set)
	bridgeContract = make(map[uint64]map[uint64]string)
	for _, edge := range config.Bridges {
		if bridgeEdges[edge.FromChainID] == nil {
			bridgeEdges[edge.FromChainID] = mapset.NewSet()
			bridgeContract[edge.FromChainID] = make(map[uint64]string)
		}
		bridgeEdges[edge.FromChainID].Add(edge.ToChainID)
		bridgeContract[edge.FromChainID][edge.ToChainID] = edge.Contract
	}

	tokenAddresses = make(map[string]map[uint64]string, len(config.Tokens))
	for symbol, addrs := range config.Tokens {
		chainAddrs := make(map[uint64]string, len(addrs))
		for chainIDStr, addr := range addrs {
			chainID, err := parseChainID(chainIDStr)
			if err != nil {
				log.Fatal("init registry with wrong token chain id", "symbol", symbol, "chainID", chainIDStr)
			}
			chainAddrs[chainID] = addr
		}
		tokenAddresses[strings.ToUpper(symbol)] = chainAddrs
	}

	if config.FeePolicy != nil {
		feePolicy = config.FeePolicy
	}

	log.Info("init chain registry success",
		"chains", len(chainConfigs), "edges", len(config.Bridges),
		"tokens", len(tokenAddresses), "hub", feePolicy.HubChainID)
}

func parseChainID(str string) (uint64, error) {
	return common.GetUint64FromStr(str)
}

// IsSupported is chain registered
func IsSupported(chainID uint64) bool {
	_, exist := chainConfigs[chainID]
	return exist
}

// ChainName get chain name. Display helper, returns the Unknown
// sentinel instead of erroring for unregistered chains.
func ChainName(chainID uint64) string {
	if chain, exist := chainConfigs[chainID]; exist {
		return chain.Name
	}
	return UnknownChainName
}

// GetChainConfig get chain config of registered chain
func GetChainConfig(chainID uint64) *params.ChainConfig {
	return chainConfigs[chainID]
}

// AllChainIDs all registered chain ids in ascending order
func AllChainIDs() []uint64 {
	ids := make([]uint64, len(allChainIDs))
	copy(ids, allChainIDs)
	return ids
}

// EdgesFrom direct bridge targets of chain in ascending order
func EdgesFrom(chainID uint64) []uint64 {
	set := bridgeEdges[chainID]
	if set == nil {
		return nil
	}
	targets := make([]uint64, 0, set.Cardinality())
	for elem := range set.Iter() {
		targets = append(targets, elem.(uint64))
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

// HasBridge has a direct bridge edge
func HasBridge(fromChainID, toChainID uint64) bool {
	set := bridgeEdges[fromChainID]
	return set != nil && set.Contains(toChainID)
}

// BridgeContract get bridge contract address of a direct edge
func BridgeContract(fromChainID, toChainID uint64) (string, bool) {
	contracts := bridgeContract[fromChainID]
	if contracts == nil {
		return "", false
	}
	contract, exist := contracts[toChainID]
	return contract, exist
}

// TokenAddress get token address of symbol on chain
func TokenAddress(symbol string, chainID uint64) (string, bool) {
	addrs := tokenAddresses[strings.ToUpper(symbol)]
	if addrs == nil {
		return "", false
	}
	addr, exist := addrs[chainID]
	return addr, exist
}

// AllTokenSymbols all registered token symbols in ascending order
func AllTokenSymbols() []string {
	symbols := make([]string, 0, len(tokenAddresses))
	for symbol := range tokenAddresses {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// GetFeePolicy get fee policy of the registry
func GetFeePolicy() *params.FeePolicyConfig {
	return feePolicy
}

// EstimatedTimeOf static confirmation latency of target chain in minutes
func EstimatedTimeOf(toChainID uint64) (uint64, error) {
	chain := chainConfigs[toChainID]
	if chain == nil {
		return 0, tokens.ErrUnknownChain
	}
	return chain.LatencyMinutes, nil
}
