package mongodb

const (
	tbBridgeStatuses string = "BridgeStatuses"
)

// MgoBridgeStatus bridge status record of one submitted hop transaction
type MgoBridgeStatus struct {
	Key         string `bson:"_id"` // fromChainID + txhash
	TxHash      string `bson:"txhash"`
	State       uint8  `bson:"state"`
	Reason      string `bson:"reason,omitempty"`
	Sender      string `bson:"sender,omitempty"`
	Recipient   string `bson:"recipient,omitempty"`
	FromChainID uint64 `bson:"fromChainID"`
	ToChainID   uint64 `bson:"toChainID,omitempty"`
	Amount      string `bson:"amount,omitempty"`
	BlockHeight uint64 `bson:"blockHeight,omitempty"`
	Timestamp   int64  `bson:"timestamp"`
	InitTime    int64  `bson:"inittime"`
}
