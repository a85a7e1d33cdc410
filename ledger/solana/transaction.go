// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package solana

import (
	"golang.org/x/crypto/ed25519"
)

// sizes of Solana values
const (
	PublicKeySize = 32
	HashSize      = 32
	SignatureSize = ed25519.SignatureSize
)

// message header: one signer (the payer) and the program as the only
// read-only unsigned account
var messageHeader = []byte{
	1, // required signatures
	0, // read-only signed accounts
	1, // read-only unsigned accounts
}

// account indexes in the message
const (
	payerIndex   = 0
	programIndex = 1
)

// Solana short vector length encoding
func compactU16(n int) []byte {
	b := make([]byte, 0, 3)
	for {
		element := byte(n & 0x7f)
		n >>= 7
		if 0 == n {
			return append(b, element)
		}
		b = append(b, element|0x80)
	}
}

// build the message of a single instruction transaction
func buildMessage(payer ed25519.PublicKey, program []byte, blockhash []byte, data []byte) []byte {
	message := make([]byte, 0, 3+1+2*PublicKeySize+HashSize+8+len(data))
	message = append(message, messageHeader...)

	// account keys
	message = append(message, compactU16(2)...)
	message = append(message, payer...)
	message = append(message, program...)

	message = append(message, blockhash...)

	// instructions
	message = append(message, compactU16(1)...)
	message = append(message, programIndex)
	message = append(message, compactU16(1)...)
	message = append(message, payerIndex)
	message = append(message, compactU16(len(data))...)
	message = append(message, data...)

	return message
}

// sign a message and build the wire transaction
//
// returns the transaction and the payer signature
func buildTransaction(payer ed25519.PrivateKey, program []byte, blockhash []byte, data []byte) ([]byte, []byte) {
	payerPublic := payer.Public().(ed25519.PublicKey)
	message := buildMessage(payerPublic, program, blockhash, data)
	signature := ed25519.Sign(payer, message)

	transaction := make([]byte, 0, 1+SignatureSize+len(message))
	transaction = append(transaction, compactU16(1)...)
	transaction = append(transaction, signature...)
	transaction = append(transaction, message...)
	return transaction, signature
}
