// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package solana - submit treasure records to a Solana program
//
// records are sent as the instruction data of a single instruction to
// the configured program, in a legacy transaction paid and signed by the
// payer key.  The node is reached through its JSON-RPC 2.0 HTTP API:
//
//   getEpochInfo        - connection probe
//   getLatestBlockhash  - recent blockhash, cached for a short time
//   sendTransaction     - base64 encoded signed transaction
//
// the transaction id is the base58 encoded payer signature
package solana
