// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/geonft/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidRequestKind  = fault.InvalidError("request kind must be plant or claim")
	ErrRequiredAccountFile = fault.InvalidError("account key file is required")
	ErrRequiredEvents      = fault.InvalidError("event store directory is required")
	ErrRequiredImageFile   = fault.InvalidError("image file is required")
	ErrRequiredRequestFile = fault.InvalidError("request file is required")
	ErrRequiredTreasure    = fault.InvalidError("treasure key is required")
	ErrRequiredTreasureKey = fault.InvalidError("treasure key file is required")
)
