// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/AminRezaei0x443/tonlib-go/fault"
)

// Bytes - arbitrary length binary data
//
// represented on the wire as a base64 string using the standard
// alphabet with padding
type Bytes []byte

// convert binary data to padded standard base64 for JSON
func (b Bytes) MarshalText() ([]byte, error) {
	size := base64.StdEncoding.EncodedLen(len(b))
	buffer := make([]byte, size)
	base64.StdEncoding.Encode(buffer, b)
	return buffer, nil
}

// convert padded standard base64 text into binary data
//
// whitespace is not trimmed: any stray character fails the decode
func (b *Bytes) UnmarshalText(s []byte) error {
	if strings.ContainsAny(string(s), " \t\r\n") {
		return fault.ErrInvalidBase64
	}
	buffer := make([]byte, base64.StdEncoding.DecodedLen(len(s)))
	byteCount, err := base64.StdEncoding.Strict().Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidBase64
	}
	*b = buffer[:byteCount]
	return nil
}

// Int64 - a 64 bit signed quantity
//
// the wire value is either a native JSON number or a decimal numeral
// inside a string, since not every producer can carry the full 64 bit
// range in a native number; outgoing values are always native numbers
type Int64 int64

// Int32 - a 32 bit signed quantity with the same dual wire form
type Int32 int32

// always the native number form
func (i Int64) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i), 10), nil
}

// accept either a native number token or a quoted decimal numeral
func (i *Int64) UnmarshalJSON(data []byte) error {
	value, err := decodeInt(data, 64)
	if nil != err {
		return err
	}
	*i = Int64(value)
	return nil
}

// always the native number form
func (i Int32) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i), 10), nil
}

// accept either a native number token or a quoted decimal numeral
func (i *Int32) UnmarshalJSON(data []byte) error {
	value, err := decodeInt(data, 32)
	if nil != err {
		return err
	}
	*i = Int32(value)
	return nil
}

// decode a number-or-string JSON token as base-10
//
// fails on anything that is not an in-range integral value, including
// native float tokens such as 1.5 or 1e3
func decodeInt(data []byte, bitSize int) (int64, error) {
	s := string(data)
	if len(s) >= 2 && '"' == s[0] {
		unquoted, err := strconv.Unquote(s)
		if nil != err {
			return 0, fault.ErrInvalidNumber
		}
		s = unquoted
	}
	value, err := strconv.ParseInt(s, 10, bitSize)
	if nil != err {
		return 0, fault.ErrInvalidNumber
	}
	return value, nil
}
