package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/crosshop/CrossChain-Bridger/internal/bridgeapi"
	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/router"
)

var errMissAmountParameter = errors.New("miss query parameter 'amount'")

func writeResponse(w http.ResponseWriter, resp interface{}, err error) {
	// Note: must set header before write header
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	if err == nil {
		jsonData, _ := json.Marshal(resp)
		_, _ = w.Write(jsonData)
	} else {
		fmt.Fprintln(w, err.Error())
	}
}

// VersionInfoHandler handler
func VersionInfoHandler(w http.ResponseWriter, r *http.Request) {
	version := params.VersionWithMeta
	writeResponse(w, version, nil)
}

// ServerInfoHandler handler
func ServerInfoHandler(w http.ResponseWriter, r *http.Request) {
	serverInfo := bridgeapi.GetServerInfo()
	writeResponse(w, serverInfo, nil)
}

// GetSupportedChainsHandler handler
func GetSupportedChainsHandler(w http.ResponseWriter, r *http.Request) {
	chains := bridgeapi.GetSupportedChains()
	writeResponse(w, chains, nil)
}

// GetAllTokenSymbolsHandler handler
func GetAllTokenSymbolsHandler(w http.ResponseWriter, r *http.Request) {
	symbols := router.AllTokenSymbols()
	writeResponse(w, symbols, nil)
}

// GetRouteHandler handler
func GetRouteHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vals := r.URL.Query()
	token := ""
	if tokenVals, exist := vals["token"]; exist {
		token = tokenVals[0]
	}
	amountVals, exist := vals["amount"]
	if !exist {
		writeResponse(w, nil, errMissAmountParameter)
		return
	}
	res, err := bridgeapi.GetRoute(vars["fromchainid"], vars["tochainid"], token, amountVals[0])
	writeResponse(w, res, err)
}

// GetFeesHandler handler
func GetFeesHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := bridgeapi.GetFees(vars["fromchainid"], vars["tochainid"], vars["amount"])
	writeResponse(w, res, err)
}

// EstimateGasHandler handler
func EstimateGasHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vals := r.URL.Query()
	token := ""
	if tokenVals, exist := vals["token"]; exist {
		token = tokenVals[0]
	}
	res, err := bridgeapi.GetEstimateGas(vars["fromchainid"], vars["tochainid"], token)
	writeResponse(w, res, err)
}

// RegisterBridgeStatusHandler handler
func RegisterBridgeStatusHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := bridgeapi.RegisterBridgeStatus(vars["chainid"], vars["txhash"])
	writeResponse(w, res, err)
}

// GetBridgeStatusHandler handler
func GetBridgeStatusHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := bridgeapi.GetBridgeStatus(vars["chainid"], vars["txhash"])
	writeResponse(w, res, err)
}

func getPagingValues(r *http.Request) (offset, limit int, err error) {
	vals := r.URL.Query()
	offsetStr, exist := vals["offset"]
	if exist {
		offset, err = strconv.Atoi(offsetStr[0])
		if err != nil {
			return offset, limit, err
		}
	}
	limitStr, exist := vals["limit"]
	if exist {
		limit, err = strconv.Atoi(limitStr[0])
		if err != nil {
			return offset, limit, err
		}
	}
	return offset, limit, nil
}

// GetBridgeHistoryHandler handler
func GetBridgeHistoryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offset, limit, err := getPagingValues(r)
	if err != nil {
		writeResponse(w, nil, err)
	} else {
		res, err := bridgeapi.GetBridgeHistory(vars["address"], vars["chainid"], offset, limit)
		writeResponse(w, res, err)
	}
}
