// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	DecodeError       GenericError
	ExistsError       GenericError
	InvalidError      GenericError
	NotFoundError     GenericError
	PersistenceError  GenericError
	PreconditionError GenericError
	ProcessError      GenericError
	ServiceError      GenericError
	SignatureError    GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	ClaimAlreadyRecorded     = ExistsError("treasure already claimed")
	ClaimNotFound            = NotFoundError("claim record not found")
	ConfigurationIsNotATable = InvalidError("configuration did not return a table")
	ContentServiceFailed     = ServiceError("content store request failed")
	ContentServiceUnreached  = ServiceError("content store connection failed")
	DatabaseIsNotSet         = PersistenceError("database is not set")
	DatabaseVersionMismatch  = PersistenceError("database version mismatch")
	EventReadFailed          = PersistenceError("event record read failed")
	EventWriteFailed         = PersistenceError("event record write failed")
	InvalidAccountKey        = DecodeError("invalid account public key")
	InvalidContentIdentifier = DecodeError("invalid content identifier")
	InvalidContentKind       = InvalidError("invalid content store kind")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidKeyFile           = InvalidError("invalid key file")
	InvalidKeyKind           = InvalidError("invalid key kind")
	InvalidKeyLength         = DecodeError("invalid key length")
	InvalidLedgerKind        = InvalidError("invalid ledger kind")
	InvalidPrivateKeyFile    = InvalidError("invalid private key file")
	InvalidPublicKeyFile     = InvalidError("invalid public key file")
	InvalidSignature         = SignatureError("invalid signature")
	InvalidSignatureEncoding = DecodeError("invalid signature encoding")
	InvalidStatus            = InvalidError("invalid sync status")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	InvalidTreasureKey       = DecodeError("invalid treasure public key")
	KeyFileAlreadyExists     = ExistsError("key file already exists")
	LedgerServiceFailed      = ServiceError("ledger request failed")
	LedgerServiceUnreached   = ServiceError("ledger connection failed")
	NotInitialised           = NotFoundError("not initialised")
	NotTreasureRecordPack    = InvalidError("not a treasure record pack")
	PlantAlreadyRecorded     = ExistsError("treasure already planted")
	PlantNotFound            = NotFoundError("plant record not found")
	RateLimiting             = ServiceError("rate limiting")
	StatusReadFailed         = PersistenceError("status read failed")
	StatusRegression         = PersistenceError("status must advance")
	StatusWriteFailed        = PersistenceError("status write failed")
	StepIsStale              = PreconditionError("step precondition does not hold")
	TreasureNotPlanted       = SignatureError("treasure has not been planted")
	UnknownStepKind          = InvalidError("unknown step kind")
)

// the error interface methods
func (e GenericError) Error() string      { return string(e) }
func (e DecodeError) Error() string       { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e PersistenceError) Error() string  { return string(e) }
func (e PreconditionError) Error() string { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e ServiceError) Error() string      { return string(e) }
func (e SignatureError) Error() string    { return string(e) }

// determine the class of an error
func IsErrDecode(e error) bool       { var t DecodeError; return errors.As(e, &t) }
func IsErrExists(e error) bool       { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool      { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool     { var t NotFoundError; return errors.As(e, &t) }
func IsErrPersistence(e error) bool  { var t PersistenceError; return errors.As(e, &t) }
func IsErrPrecondition(e error) bool { var t PreconditionError; return errors.As(e, &t) }
func IsErrProcess(e error) bool      { var t ProcessError; return errors.As(e, &t) }
func IsErrService(e error) bool      { var t ServiceError; return errors.As(e, &t) }
func IsErrSignature(e error) bool    { var t SignatureError; return errors.As(e, &t) }
