// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sync/atomic"

	"github.com/bitmark-inc/geonft/ratelimit"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Id      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Id      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error: %d  %s", e.Code, e.Message)
}

// perform one JSON-RPC call and decode its result
func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	err := ratelimit.Limit(ctx, c.limiter)
	if nil != err {
		return err
	}

	request := rpcRequest{
		JSONRPC: jsonRPCVersion,
		Id:      atomic.AddUint64(&c.requestId, 1),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(request)
	if nil != err {
		return err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if nil != err {
		return err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.httpClient.Do(httpRequest)
	if nil != err {
		return err
	}
	defer httpResponse.Body.Close()

	data, err := ioutil.ReadAll(httpResponse.Body)
	if nil != err {
		return err
	}
	if http.StatusOK != httpResponse.StatusCode {
		return fmt.Errorf("%s: http status: %d", method, httpResponse.StatusCode)
	}

	var response rpcResponse
	err = json.Unmarshal(data, &response)
	if nil != err {
		return fmt.Errorf("%s: invalid response: %s", method, err)
	}
	if nil != response.Error {
		return response.Error
	}
	if nil == result {
		return nil
	}
	return json.Unmarshal(response.Result, result)
}
