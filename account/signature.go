// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/geonft/fault"
)

// Signature - the type for a signature
type Signature []byte

// SignatureFromString - decode a base64 signature
func SignatureFromString(encoded string) (Signature, error) {
	signature, err := base64.StdEncoding.DecodeString(encoded)
	if nil != err {
		return nil, fault.InvalidSignatureEncoding
	}
	if ed25519.SignatureSize != len(signature) {
		return nil, fault.InvalidSignatureEncoding
	}
	return signature, nil
}

// String - base64 form as used in requests
func (signature Signature) String() string {
	return base64.StdEncoding.EncodeToString(signature)
}

// GoString - convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := SignatureFromString(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}
