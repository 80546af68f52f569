// Package client provides a JSON-RPC 2.0 client over HTTP POST.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultRequestTimeout = 60 // seconds
	defaultSlowTimeout    = 300
)

var httpClient *http.Client

// InitHTTPClient init the shared http client
func InitHTTPClient() {
	httpClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func getHTTPClient() *http.Client {
	if httpClient == nil {
		InitHTTPClient()
	}
	return httpClient
}

// GetDefaultTimeout get default timeout in seconds
func GetDefaultTimeout(isSlow bool) int {
	if isSlow {
		return defaultSlowTimeout
	}
	return defaultRequestTimeout
}

// Request json-rpc request
type Request struct {
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
	Version string        `json:"jsonrpc"`
}

type jsonError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (err *jsonError) Error() string {
	return fmt.Sprintf("json-rpc error %v: %v", err.Code, err.Message)
}

type jsonResponse struct {
	Error  *jsonError      `json:"error,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

// RPCPost json-rpc post with default timeout
func RPCPost(result interface{}, url, method string, params ...interface{}) error {
	return RPCPostWithTimeout(defaultRequestTimeout, result, url, method, params...)
}

// RPCPostWithTimeout json-rpc post with specified timeout in seconds
func RPCPostWithTimeout(timeout int, result interface{}, url, method string, params ...interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()
	return RPCPostWithContext(ctx, result, url, method, params...)
}

// RPCPostWithContext json-rpc post bounded by caller context
func RPCPostWithContext(ctx context.Context, result interface{}, url, method string, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	reqBody, err := json.Marshal(&Request{
		Method:  method,
		Params:  params,
		ID:      1,
		Version: "2.0",
	})
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := getHTTPClient().Do(req)
	if err != nil {
		return errors.Wrapf(err, "post to '%v'", url)
	}
	defer func() { _ = resp.Body.Close() }()

	const maxReadContentLength int64 = 1024 * 1024 * 10 // 10M
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReadContentLength))
	if err != nil {
		return errors.Wrap(err, "read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("wrong response status %v, body '%v'", resp.StatusCode, string(body))
	}

	var jsonResp jsonResponse
	if err = json.Unmarshal(body, &jsonResp); err != nil {
		return errors.Wrapf(err, "unmarshal response body '%v'", string(body))
	}
	if jsonResp.Error != nil {
		return jsonResp.Error
	}
	if len(jsonResp.Result) == 0 || string(jsonResp.Result) == "null" {
		return ErrNullResult
	}
	return json.Unmarshal(jsonResp.Result, result)
}

// ErrNullResult json-rpc result is null
var ErrNullResult = errors.New("json-rpc result is null")
