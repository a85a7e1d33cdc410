// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treasure - plant and claim requests and their signatures
//
// A plant carries two signatures:
//
//   account:   "plant" ++ bech32(treasure key)
//   treasure:  "plant" ++ bech32(account key) ++ SHA-256(image)
//
// A claim carries two signatures:
//
//   account:   "claim" ++ bech32(treasure key)
//   treasure:  "claim" ++ bech32(account key)
//
// and is only valid once the treasure has been planted.
//
// Notes:
// 1. ++ = concatenation of byte data
// 2. keys are concatenated in their canonical (lower case) text form
// 3. the image digest is the 32 byte binary SHA-256
package treasure
