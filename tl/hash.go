// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/AminRezaei0x443/tonlib-go/fault"
)

// number of bytes in a hash
const HashLength = 32

// Hash - a fixed size transaction or account hash
//
// represented as base64 text for JSON encoding
// represented as lowercase hex for print
// to convert to bytes just use h[:]
type Hash [HashLength]byte

// HashFromString - decode a hash from its textual form
//
// three encodings are accepted, reflecting the producers seen in the
// wild:
//
//	64 characters        - hex, upper or lower case
//	44 characters        - padded base64
//	any other length     - unpadded base64
//
// the base64 alphabet is URL-safe when the text contains '-' or '_'
// and standard otherwise
//
// note the length 44 padding heuristic would misclassify a base64
// string of a non-standard hash length; it is kept as-is because
// existing producers depend on it
func HashFromString(s string) (Hash, error) {
	var hash Hash

	if hex.EncodedLen(HashLength) == len(s) {
		buffer, err := hex.DecodeString(s)
		if nil != err {
			return hash, fault.ErrInvalidHexHash
		}
		copy(hash[:], buffer)
		return hash, nil
	}

	encoding := base64.StdEncoding
	if strings.ContainsAny(s, "-_") {
		encoding = base64.URLEncoding
	}
	if 44 != len(s) {
		encoding = encoding.WithPadding(base64.NoPadding)
	}
	buffer, err := encoding.Strict().DecodeString(s)
	if nil != err {
		return hash, fault.ErrInvalidBase64
	}
	if HashLength != len(buffer) {
		return hash, fault.ErrInvalidHashLength
	}
	copy(hash[:], buffer)
	return hash, nil
}

// HashFromBytes - convert and validate a binary byte slice to a hash
func HashFromBytes(hash *Hash, buffer []byte) error {
	if HashLength != len(buffer) {
		return fault.ErrInvalidHashLength
	}
	copy(hash[:], buffer)
	return nil
}

// convert a hash to lowercase hex for use by the fmt package (for %s)
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// convert a hash to hex with a marker, for debugging (for %#v)
func (hash Hash) GoString() string {
	return "<hash:" + hex.EncodeToString(hash[:]) + ">"
}

// convert a textual hash representation for use by the format package
// scan routines
func (hash *Hash) Scan(state fmt.ScanState, verb rune) error {
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
		case '+', '/', '-', '_', '=':
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	h, err := HashFromString(string(token))
	if nil != err {
		return err
	}
	*hash = h
	return nil
}

// convert a hash to padded standard base64 text
func (hash Hash) MarshalText() ([]byte, error) {
	size := base64.StdEncoding.EncodedLen(HashLength)
	buffer := make([]byte, size)
	base64.StdEncoding.Encode(buffer, hash[:])
	return buffer, nil
}

// convert padded standard base64 text into a hash
func (hash *Hash) UnmarshalText(s []byte) error {
	buffer := make([]byte, base64.StdEncoding.DecodedLen(len(s)))
	byteCount, err := base64.StdEncoding.Strict().Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidBase64
	}
	if HashLength != byteCount {
		return fault.ErrInvalidHashLength
	}
	copy(hash[:], buffer[:byteCount])
	return nil
}
