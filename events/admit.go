// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"github.com/bitmark-inc/geonft/fault"
	"github.com/bitmark-inc/geonft/treasure"
)

// AdmitPlant - verify a plant request and record it in canonical form
func (store *Store) AdmitPlant(request *treasure.PlantRequest) (*treasure.Plant, error) {
	plant, err := request.Verify()
	if nil != err {
		return nil, err
	}

	key := plant.Key()
	exists, err := store.HasPlant(key)
	if nil != err {
		return nil, err
	}
	if exists {
		return nil, fault.PlantAlreadyRecorded
	}

	canonical := *request
	canonical.AccountPublicKey = plant.Account.String()
	canonical.TreasurePublicKey = key

	err = store.write(Plant, key, &canonical)
	if nil != err {
		return nil, err
	}
	return plant, nil
}

// AdmitClaim - verify a claim request against a recorded plant and
// record it in canonical form
func (store *Store) AdmitClaim(request *treasure.ClaimRequest) (*treasure.Claim, error) {
	claim, err := request.Verify(store.HasPlant)
	if nil != err {
		return nil, err
	}

	key := claim.Key()
	exists, err := store.HasClaim(key)
	if nil != err {
		return nil, err
	}
	if exists {
		return nil, fault.ClaimAlreadyRecorded
	}

	canonical := *request
	canonical.AccountPublicKey = claim.Account.String()
	canonical.TreasurePublicKey = key

	err = store.write(Claim, key, &canonical)
	if nil != err {
		return nil, err
	}
	return claim, nil
}
