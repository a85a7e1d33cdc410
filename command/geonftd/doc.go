// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// geonftd - copy admitted treasure plants and claims to the ledger
//
// reads the plant and claim records written by the producer gate,
// uploads each treasure image to the content store and submits the
// plant and claim records to the ledger, keeping the stage reached by
// each treasure in a leveldb status database
//
//   geonftd --config-file=geonftd.conf gen-payer-key
//   geonftd --config-file=geonftd.conf status
//   geonftd --config-file=geonftd.conf plan
//   geonftd --config-file=geonftd.conf start
package main
