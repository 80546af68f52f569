package mongodb

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

var maxCountOfResults = int64(1000)

// GetBridgeStatusKey get bridge status record key
func GetBridgeStatusKey(fromChainID uint64, txHash string) string {
	return strings.ToLower(fmt.Sprintf("%v:%v", fromChainID, txHash))
}

// ConvertToBridgeStatus convert record to bridge status
func ConvertToBridgeStatus(ms *MgoBridgeStatus) *tokens.BridgeStatus {
	status := &tokens.BridgeStatus{
		TxHash:      ms.TxHash,
		State:       tokens.BridgeState(ms.State),
		Reason:      ms.Reason,
		Sender:      ms.Sender,
		FromChainID: ms.FromChainID,
		ToChainID:   ms.ToChainID,
		BlockHeight: ms.BlockHeight,
		Timestamp:   ms.Timestamp,
	}
	if ms.Amount != "" {
		if amount, ok := new(big.Int).SetString(ms.Amount, 10); ok {
			status.Amount = amount
		}
	}
	return status
}

// ConvertFromBridgeStatus build a storable record from a live status
func ConvertFromBridgeStatus(status *tokens.BridgeStatus) *MgoBridgeStatus {
	ms := &MgoBridgeStatus{
		TxHash:      status.TxHash,
		State:       uint8(status.State),
		Reason:      status.Reason,
		Sender:      strings.ToLower(status.Sender),
		FromChainID: status.FromChainID,
		ToChainID:   status.ToChainID,
		BlockHeight: status.BlockHeight,
		Timestamp:   status.Timestamp,
	}
	if status.Amount != nil {
		ms.Amount = status.Amount.String()
	}
	return ms
}

// AddBridgeStatus add bridge status record
func AddBridgeStatus(ms *MgoBridgeStatus) error {
	ms.Key = GetBridgeStatusKey(ms.FromChainID, ms.TxHash)
	ms.InitTime = time.Now().UnixMilli()
	_, err := collBridgeStatus.InsertOne(clientCtx, ms)
	switch {
	case err == nil:
		log.Info("mongodb add bridge status success",
			"chainID", ms.FromChainID, "txHash", ms.TxHash)
	case mongo.IsDuplicateKeyError(err):
		return nil
	default:
		log.Error("mongodb add bridge status failed",
			"chainID", ms.FromChainID, "txHash", ms.TxHash, "err", err)
	}
	return mgoError(err)
}

// UpdateBridgeStatus update state of stored record. Terminal records
// are never overwritten.
func UpdateBridgeStatus(fromChainID uint64, txHash string, status *tokens.BridgeStatus) error {
	stored, err := FindBridgeStatus(fromChainID, txHash)
	if err != nil {
		return err
	}
	if tokens.BridgeState(stored.State).IsTerminal() {
		return nil
	}
	updates := bson.M{
		"state":     uint8(status.State),
		"reason":    status.Reason,
		"timestamp": status.Timestamp,
	}
	if status.BlockHeight != 0 {
		updates["blockHeight"] = status.BlockHeight
	}
	if status.ToChainID != 0 {
		updates["toChainID"] = status.ToChainID
	}
	if status.Amount != nil {
		updates["amount"] = status.Amount.String()
	}
	key := GetBridgeStatusKey(fromChainID, txHash)
	_, err = collBridgeStatus.UpdateByID(clientCtx, key, bson.M{"$set": updates})
	if err == nil {
		log.Info("mongodb update bridge status success",
			"chainID", fromChainID, "txHash", txHash, "state", status.State.String())
	}
	return mgoError(err)
}

// FindBridgeStatus find bridge status record
func FindBridgeStatus(fromChainID uint64, txHash string) (*MgoBridgeStatus, error) {
	key := GetBridgeStatusKey(fromChainID, txHash)
	result := &MgoBridgeStatus{}
	err := collBridgeStatus.FindOne(clientCtx, bson.M{"_id": key}).Decode(result)
	if err != nil {
		return nil, mgoError(err)
	}
	return result, nil
}

// FindPendingBridgeStatuses find records to poll for confirmation
func FindPendingBridgeStatuses() ([]*MgoBridgeStatus, error) {
	opts := options.Find().SetSort(bson.D{{Key: "inittime", Value: 1}}).SetLimit(maxCountOfResults)
	cursor, err := collBridgeStatus.Find(clientCtx,
		bson.M{"state": uint8(tokens.StatusPending)}, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	var result []*MgoBridgeStatus
	if err = cursor.All(clientCtx, &result); err != nil {
		return nil, mgoError(err)
	}
	return result, nil
}

// FindBridgeHistory find records sent by address, newest first
func FindBridgeHistory(sender string, fromChainID uint64, offset, limit int) ([]*MgoBridgeStatus, error) {
	if limit <= 0 || int64(limit) > maxCountOfResults {
		limit = 10
	}
	filter := bson.M{"sender": strings.ToLower(sender)}
	if fromChainID != 0 {
		filter["fromChainID"] = fromChainID
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "inittime", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := collBridgeStatus.Find(clientCtx, filter, opts)
	if err != nil {
		return nil, mgoError(err)
	}
	var result []*MgoBridgeStatus
	if err = cursor.All(clientCtx, &result); err != nil {
		return nil, mgoError(err)
	}
	return result, nil
}
