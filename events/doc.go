// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - directory backed store of plant and claim requests
//
// layout:
//
//   <directory>/plant/<treasure key>   - JSON plant request
//   <directory>/claim/<treasure key>   - JSON claim request
//
// the modification time of a file is the time of its event.  Records are
// written under a temporary name starting with "." and then linked into
// place, so a reader never sees a partial record and an existing record
// is never replaced.
package events
