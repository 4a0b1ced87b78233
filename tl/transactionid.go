// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AminRezaei0x443/tonlib-go/fault"
)

// InternalTransactionId - position of a transaction in an account's
// transaction chain
//
// the canonical textual form is "<lt>:<lowercase hex hash>"; parsing
// additionally accepts the hash as padded or unpadded base64 in
// either alphabet, see HashFromString
type InternalTransactionId struct {
	Lt   Int64 `json:"lt"`
	Hash Hash  `json:"hash"`
}

// NullTransactionId - the "no previous transaction" marker used by
// account state records
//
// read-only: never modify this value
var NullTransactionId = InternalTransactionId{
	Lt:   0,
	Hash: Hash{},
}

// TransactionIdFromString - parse the "<lt>:<hash>" form
//
// the textual encoding used for the hash is forgotten: the result
// always reformats to the canonical lowercase hex form
func TransactionIdFromString(s string) (InternalTransactionId, error) {
	var id InternalTransactionId

	parts := strings.Split(s, ":")
	if 2 != len(parts) {
		return id, fmt.Errorf("transaction id: %q: %w", s, fault.ErrMalformedTransactionId)
	}
	lt, err := strconv.ParseInt(parts[0], 10, 64)
	if nil != err {
		return id, fmt.Errorf("transaction id: %q: %w", s, fault.ErrInvalidLogicalTime)
	}
	hash, err := HashFromString(parts[1])
	if nil != err {
		return id, fmt.Errorf("transaction id: %q: %w", s, err)
	}
	id.Lt = Int64(lt)
	id.Hash = hash
	return id, nil
}

// TransactionIdFromLtHash - build an id from an already split pair
func TransactionIdFromLtHash(lt int64, hashStr string) (InternalTransactionId, error) {
	hash, err := HashFromString(hashStr)
	if nil != err {
		return InternalTransactionId{}, err
	}
	return InternalTransactionId{Lt: Int64(lt), Hash: hash}, nil
}

// HashString - just the hash part as lowercase hex
func (id InternalTransactionId) HashString() string {
	return id.Hash.String()
}

// convert an id to its canonical form for use by the fmt package (for %s)
func (id InternalTransactionId) String() string {
	return strconv.FormatInt(int64(id.Lt), 10) + ":" + id.Hash.String()
}

// convert an id for debugging (for %#v)
func (id InternalTransactionId) GoString() string {
	return "<txid:" + id.String() + ">"
}

// convert a textual id for use by the format package scan routines
func (id *InternalTransactionId) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		switch c {
		case ':', '+', '/', '-', '_', '=':
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := TransactionIdFromString(string(token))
	if nil != err {
		return err
	}
	*id = parsed
	return nil
}
