// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - a local append only ledger
//
// each entry is Varint64(length) ++ packed record and is identified by
// the hex SHA3-256 of the packed record
package journal

import (
	"context"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/treasurerecord"
	"github.com/bitmark-inc/geonft/util"
)

// Configuration - journal settings
type Configuration struct {
	File string `gluamapper:"file" json:"file"`
}

// Journal - append only file of packed records
type Journal struct {
	sync.Mutex
	log      *logger.L
	fileName string
}

// New - journal writing to the configured file
func New(configuration *Configuration) *Journal {
	return &Journal{
		log:      logger.New("journal"),
		fileName: configuration.File,
	}
}

// Connect - check the journal can be appended to
func (j *Journal) Connect(ctx context.Context) error {
	j.Lock()
	defer j.Unlock()

	f, err := j.open()
	if nil != err {
		return fmt.Errorf("%w: %s", fault.LedgerServiceUnreached, err)
	}
	return f.Close()
}

// Submit - append a packed record
func (j *Journal) Submit(ctx context.Context, packed treasurerecord.Packed) (string, error) {
	if 0 == len(packed) {
		return "", fault.NotTreasureRecordPack
	}

	j.Lock()
	defer j.Unlock()

	f, err := j.open()
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.LedgerServiceFailed, err)
	}

	entry := append(util.ToVarint64(uint64(len(packed))), packed...)
	_, err = f.Write(entry)
	if nil == err {
		err = f.Sync()
	}
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.LedgerServiceFailed, err)
	}

	txId := TransactionId(packed)
	j.log.Infof("appended: %s  type: %d  bytes: %d", txId, packed.Type(), len(packed))
	return txId, nil
}

func (j *Journal) open() (*os.File, error) {
	return os.OpenFile(j.fileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
}

// TransactionId - id of a packed record
func TransactionId(packed treasurerecord.Packed) string {
	digest := sha3.Sum256(packed)
	return hex.EncodeToString(digest[:])
}

// ReadAll - every packed record in a journal file
func ReadAll(fileName string) ([]treasurerecord.Packed, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	records := make([]treasurerecord.Packed, 0, 16)
	for n := 0; n < len(data); {
		length, offset := util.FromVarint64(data[n:])
		if 0 == offset || uint64(len(data)-n-offset) < length {
			return records, fault.NotTreasureRecordPack
		}
		n += offset
		records = append(records, treasurerecord.Packed(data[n:n+int(length)]))
		n += int(length)
	}
	return records, nil
}
