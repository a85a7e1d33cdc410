// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk status data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = canonical bech32 treasure public key (as ASCII bytes)
// 4. stage        = synchronisation stage as a single byte
// 5. *others*     = byte values of various length
//
// Status:
//
//   S ++ key                   - synchronisation stage reached
//                                data: stage
//
// Content:
//
//   C ++ key                   - content identifier of the uploaded image
//                                data: CID string
//
// Ledger:
//
//   L ++ key ++ stage          - ledger transaction that advanced to stage
//                                data: transaction id string
//
// Testing:
//   Z ++ key                   - testing data
package storage
