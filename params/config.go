// Package params loads the bridge config file and provides read accessors.
// The loaded config is process-wide immutable state, there is no mutation
// API. Changing the registry means editing the file and restarting.
package params

import (
	"encoding/json"
	"math/big"

	"github.com/BurntSushi/toml"
	"github.com/crosshop/CrossChain-Bridger/common"
	"github.com/crosshop/CrossChain-Bridger/log"
)

// bridge config constants
const (
	BridgeTxPrefixID = "crossbridge"

	// DefaultHopGasLimit conservative upper bound for the known
	// bridge contract ABI shape
	DefaultHopGasLimit = 200000

	// DefaultHistoryLimit default count of history records
	DefaultHistoryLimit = 10
)

var (
	bridgeConfig = &BridgeConfig{}
	locDataDir   string
)

// BridgeConfig config
type BridgeConfig struct {
	Identifier string
	Chains     []*ChainConfig
	Bridges    []*BridgeEdgeConfig
	Tokens     map[string]map[string]string // symbol -> chainID -> address
	FeePolicy  *FeePolicyConfig
	Server     *ServerConfig `toml:",omitempty" json:",omitempty"`
	Signer     *SignerConfig `toml:",omitempty" json:",omitempty"`
}

// ChainConfig per chain static attributes
type ChainConfig struct {
	ChainID        uint64
	Name           string
	LatencyMinutes uint64
	BaseGasFee     string // native base units, decimal string
	GasPriceFloor  string `toml:",omitempty" json:",omitempty"`
	Gateways       []string

	// cached values
	baseGasFee    *big.Int
	gasPriceFloor *big.Int
}

// GetBaseGasFee get parsed base gas fee
func (c *ChainConfig) GetBaseGasFee() *big.Int {
	return new(big.Int).Set(c.baseGasFee)
}

// GetGasPriceFloor get parsed gas price floor (may be nil)
func (c *ChainConfig) GetGasPriceFloor() *big.Int {
	if c.gasPriceFloor == nil {
		return nil
	}
	return new(big.Int).Set(c.gasPriceFloor)
}

// BridgeEdgeConfig one directed bridge edge
type BridgeEdgeConfig struct {
	FromChainID uint64
	ToChainID   uint64
	Contract    string
}

// FeePolicyConfig fee and route estimate policy.
// The static slippage and latency model is a default policy, override
// the values here instead of branching per chain in code.
type FeePolicyConfig struct {
	FeeRateBasisPoints    uint64
	DirectSlippage        float64
	MultiHopSlippage      float64
	HubChainID            uint64
	HopGasLimit           uint64
	ConfirmTimeoutSeconds uint64
}

// ServerConfig only for server mode
type ServerConfig struct {
	APIServer *APIServerConfig
	MongoDB   *MongoDBConfig `toml:",omitempty" json:",omitempty"`
}

// APIServerConfig api service config
type APIServerConfig struct {
	Port             int
	AllowedOrigins   []string
	MaxRequestsLimit int
}

// MongoDBConfig mongodb config
type MongoDBConfig struct {
	DBURL    string
	DBName   string
	UserName string `json:"-"`
	Password string `json:"-"`
}

// SignerConfig local keystore signer config
type SignerConfig struct {
	KeystoreFile string `json:"-"`
	PasswordFile string `json:"-"`
}

// GetBridgeConfig get bridge config
func GetBridgeConfig() *BridgeConfig {
	return bridgeConfig
}

// GetIdentifier get identifier
func GetIdentifier() string {
	return bridgeConfig.Identifier
}

// GetChainConfig get chain config of specified chain
func GetChainConfig(chainID uint64) *ChainConfig {
	for _, chain := range bridgeConfig.Chains {
		if chain.ChainID == chainID {
			return chain
		}
	}
	return nil
}

// GetFeePolicy get fee policy
func GetFeePolicy() *FeePolicyConfig {
	return bridgeConfig.FeePolicy
}

// GetServerConfig get server config (nil in client mode)
func GetServerConfig() *ServerConfig {
	return bridgeConfig.Server
}

// GetSignerConfig get signer config (nil means signing unavailable)
func GetSignerConfig() *SignerConfig {
	return bridgeConfig.Signer
}

// HasSigner has signer configured
func HasSigner() bool {
	return bridgeConfig.Signer != nil && bridgeConfig.Signer.KeystoreFile != ""
}

// HasMongoDB has status store configured
func HasMongoDB() bool {
	return bridgeConfig.Server != nil && bridgeConfig.Server.MongoDB != nil &&
		bridgeConfig.Server.MongoDB.DBURL != ""
}

// GetConfirmTimeout get per-hop confirmation wait timeout in seconds
func GetConfirmTimeout() uint64 {
	if bridgeConfig.FeePolicy != nil && bridgeConfig.FeePolicy.ConfirmTimeoutSeconds > 0 {
		return bridgeConfig.FeePolicy.ConfirmTimeoutSeconds
	}
	return 600
}

// LoadBridgeConfig load bridge config file
func LoadBridgeConfig(configFile string, isServer bool) *BridgeConfig {
	if configFile == "" {
		log.Fatal("must specify config file")
	}
	log.Info("load bridge config file", "configFile", configFile, "isServer", isServer)
	if !common.FileExist(configFile) {
		log.Fatalf("LoadBridgeConfig error: config file '%v' not exist", configFile)
	}
	config := &BridgeConfig{}
	if _, err := toml.DecodeFile(configFile, &config); err != nil {
		log.Fatalf("LoadBridgeConfig error (toml DecodeFile): %v", err)
	}

	if !isServer {
		config.Server = nil
	}

	bridgeConfig = config

	var bs []byte
	if log.JSONFormat {
		bs, _ = json.Marshal(config)
	} else {
		bs, _ = json.MarshalIndent(config, "", "  ")
	}
	log.Println("LoadBridgeConfig finished.", string(bs))

	if err := config.CheckConfig(isServer); err != nil {
		log.Fatalf("Check config failed. %v", err)
	}

	return bridgeConfig
}

// SetDataDir set data dir, default is the execute directory
func SetDataDir(dir string) {
	if dir == "" {
		execDir, err := common.ExecuteDir()
		if err != nil {
			log.Fatal("get execute dir failed", "err", err)
		}
		locDataDir = execDir
		return
	}
	currDir, err := common.CurrentDir()
	if err != nil {
		log.Fatal("get current dir failed", "err", err)
	}
	locDataDir = common.AbsolutePath(currDir, dir)
	log.Info("set data dir success", "datadir", locDataDir)
}

// GetDataDir get data dir
func GetDataDir() string {
	return locDataDir
}
