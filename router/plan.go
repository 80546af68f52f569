package router

import (
	"math/big"

	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// FindRoute find the shortest bridge route from source to target chain.
// A direct edge always wins. Otherwise a breadth-first search over the
// registry's edge graph is used; edges carry no weights yet, which is a
// deliberate simplification for small registries (weight edges by cost
// and time and switch to Dijkstra before the registry grows large).
// Among equally short paths the configured hub chain is preferred as a
// deterministic tie-break.
func FindRoute(fromChainID, toChainID uint64, tokenSymbol string, amount *big.Int) (*tokens.RoutePlan, error) {
	if !IsSupported(fromChainID) || !IsSupported(toChainID) {
		return nil, tokens.ErrUnknownChain
	}
	if err := tokens.CheckTransferAmount(amount); err != nil {
		return nil, err
	}

	var chainPath []uint64
	if HasBridge(fromChainID, toChainID) {
		chainPath = []uint64{fromChainID, toChainID}
	} else {
		chainPath = searchShortestPath(fromChainID, toChainID)
		if chainPath == nil {
			log.Debug("find route failed", "fromChainID", fromChainID, "toChainID", toChainID)
			return nil, tokens.ErrRouteNotFound
		}
	}

	plan := buildRoutePlan(chainPath, tokenSymbol)
	log.Debug("find route success",
		"fromChainID", fromChainID, "toChainID", toChainID,
		"token", tokenSymbol, "hops", len(plan.Hops),
		"estimatedTime", plan.EstimatedTimeMinutes, "slippage", plan.Slippage)
	return plan, nil
}

// searchShortestPath BFS over bridge edges. Neighbors are visited hub
// first, then in ascending chain id order, so the first recorded parent
// of every node already encodes the tie-break and the result is stable
// across runs.
func searchShortestPath(fromChainID, toChainID uint64) []uint64 {
	hub := feePolicy.HubChainID
	parent := make(map[uint64]uint64)
	visited := map[uint64]struct{}{fromChainID: {}}
	queue := []uint64{fromChainID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range neighborsHubFirst(current, hub) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			if next == toChainID {
				return reconstructPath(parent, fromChainID, toChainID)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func neighborsHubFirst(chainID, hub uint64) []uint64 {
	targets := EdgesFrom(chainID)
	if hub == 0 {
		return targets
	}
	for i, target := range targets {
		if target == hub && i > 0 {
			reordered := make([]uint64, 0, len(targets))
			reordered = append(reordered, hub)
			reordered = append(reordered, targets[:i]...)
			reordered = append(reordered, targets[i+1:]...)
			return reordered
		}
	}
	return targets
}

func reconstructPath(parent map[uint64]uint64, fromChainID, toChainID uint64) []uint64 {
	path := []uint64{toChainID}
	for current := toChainID; current != fromChainID; {
		current = parent[current]
		path = append(path, current)
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func buildRoutePlan(chainPath []uint64, tokenSymbol string) *tokens.RoutePlan {
	hops := make([]*tokens.Hop, 0, len(chainPath)-1)
	totalTime := uint64(0)
	totalCost := new(big.Int)
	for i := 0; i+1 < len(chainPath); i++ {
		from, to := chainPath[i], chainPath[i+1]
		contract, _ := BridgeContract(from, to)
		hops = append(hops, &tokens.Hop{
			FromChainID:    from,
			ToChainID:      to,
			BridgeContract: contract,
			TokenAddress:   resolveHopToken(tokenSymbol, from),
		})
		latency, _ := EstimatedTimeOf(to)
		totalTime += latency
		totalCost.Add(totalCost, GetChainConfig(to).GetBaseGasFee())
	}

	slippage := feePolicy.DirectSlippage
	if len(hops) > 1 {
		// static multi-hop allowance for compounded price impact;
		// a computed model would compound per hop multiplicatively
		slippage = feePolicy.MultiHopSlippage
	}

	return &tokens.RoutePlan{
		Hops:                 hops,
		ChainPath:            chainPath,
		EstimatedTimeMinutes: totalTime,
		EstimatedCost:        totalCost,
		Slippage:             slippage,
	}
}

// resolveHopToken token address of symbol on the hop's source chain,
// falling back to the native sentinel ("bridge the native asset") when
// the symbol has no mapping there
func resolveHopToken(tokenSymbol string, chainID uint64) string {
	if tokenSymbol != "" {
		if addr, exist := TokenAddress(tokenSymbol, chainID); exist {
			return addr
		}
	}
	return tokens.NativeTokenSentinel
}
