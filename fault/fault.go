// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrInvalidBase64          = InvalidError("base64 data is invalid")
	ErrInvalidHashLength      = LengthError("hash length is invalid")
	ErrInvalidHexHash         = InvalidError("hex hash is invalid")
	ErrInvalidLoggerChannel   = ProcessError("invalid logger channel")
	ErrInvalidLogicalTime     = InvalidError("logical time is invalid")
	ErrInvalidNumber          = InvalidError("number is invalid")
	ErrJsonParseFail          = ProcessError("parse to json failed")
	ErrMalformedTransactionId = InvalidError("transaction id format is invalid")
	ErrMissingField           = RecordError("required field is missing")
	ErrUnknownDiscriminator   = RecordError("record type is unknown")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string { return string(e) }
func (e LengthError) Error() string  { return string(e) }
func (e ProcessError) Error() string { return string(e) }
func (e RecordError) Error() string  { return string(e) }

// determine the class of an error
//
// classification survives wrapping with fmt.Errorf("...%w...")
func IsErrInvalid(e error) bool { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool  { var t LengthError; return errors.As(e, &t) }
func IsErrProcess(e error) bool { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool  { var t RecordError; return errors.As(e, &t) }
