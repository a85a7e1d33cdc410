// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ipfs - content store on an IPFS node through its HTTP API
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/ipfs/go-cid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/ratelimit"
)

// API paths
const (
	versionPath = "/api/v0/version"
	addPath     = "/api/v0/add?pin=true"
)

// Configuration - IPFS node settings
type Configuration struct {
	URL         string  `gluamapper:"url" json:"url"`
	RequestRate float64 `gluamapper:"request_rate" json:"request_rate"`
}

// Client - uploads blobs to one IPFS node
type Client struct {
	log        *logger.L
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type versionResponse struct {
	Version string `json:"Version"`
	Commit  string `json:"Commit"`
}

type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// New - client for the configured node
func New(configuration *Configuration) *Client {
	return &Client{
		log:        logger.New("ipfs"),
		url:        strings.TrimRight(configuration.URL, "/"),
		httpClient: &http.Client{},
		limiter:    ratelimit.New(configuration.RequestRate, 1),
	}
}

// Connect - ask the node for its version
func (c *Client) Connect(ctx context.Context) error {
	var version versionResponse
	err := c.post(ctx, versionPath, "", nil, &version)
	if nil != err {
		c.log.Errorf("connect: %s  error: %s", c.url, err)
		return fmt.Errorf("%w: %s", fault.ContentServiceUnreached, err)
	}
	c.log.Debugf("connected: %s  version: %s", c.url, version.Version)
	return nil
}

// Upload - add and pin a blob, returning its CID
func (c *Client) Upload(ctx context.Context, blob []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "treasure")
	if nil != err {
		return "", err
	}
	_, err = part.Write(blob)
	if nil == err {
		err = writer.Close()
	}
	if nil != err {
		return "", err
	}

	var added addResponse
	err = c.post(ctx, addPath, writer.FormDataContentType(), body, &added)
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.ContentServiceFailed, err)
	}

	id, err := cid.Decode(added.Hash)
	if nil != err {
		return "", fmt.Errorf("%w: %q", fault.InvalidContentIdentifier, added.Hash)
	}

	c.log.Infof("added: %s  bytes: %d", id, len(blob))
	return id.String(), nil
}

func (c *Client) post(ctx context.Context, path string, contentType string, body *bytes.Buffer, result interface{}) error {
	err := ratelimit.Limit(ctx, c.limiter)
	if nil != err {
		return err
	}

	var request *http.Request
	if nil == body {
		request, err = http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, nil)
	} else {
		request, err = http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, body)
	}
	if nil != err {
		return err
	}
	if "" != contentType {
		request.Header.Set("Content-Type", contentType)
	}

	response, err := c.httpClient.Do(request)
	if nil != err {
		return err
	}
	defer response.Body.Close()

	data, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return err
	}
	if http.StatusOK != response.StatusCode {
		return fmt.Errorf("%s: http status: %d  body: %s", path, response.StatusCode, bytes.TrimSpace(data))
	}
	return json.Unmarshal(data, result)
}
