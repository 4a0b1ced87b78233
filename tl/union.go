// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
	"fmt"

	"github.com/AminRezaei0x443/tonlib-go/fault"
)

// name of the wire field that selects a union variant
const discriminatorKey = "@type"

// shallow view of an incoming record used for variant dispatch and
// required field checks; unknown fields are simply never looked at
type rawRecord map[string]json.RawMessage

// split a payload into its top level fields
func parseRecord(data []byte) (rawRecord, error) {
	record := make(rawRecord)
	if err := json.Unmarshal(data, &record); nil != err {
		return nil, fault.ErrJsonParseFail
	}
	return record, nil
}

// the value of the "@type" field, empty if absent or not a string
func (record rawRecord) recordType() string {
	raw, ok := record[discriminatorKey]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); nil != err {
		return ""
	}
	return s
}

// check that every required field of a variant is present
//
// the error names both the variant and the first missing field
func (record rawRecord) require(variant string, fields ...string) error {
	for _, name := range fields {
		if _, ok := record[name]; !ok {
			return missingField(variant, name)
		}
	}
	return nil
}

// a decode error naming the record and the absent field
func missingField(record string, field string) error {
	return fmt.Errorf("%s: field %q: %w", record, field, fault.ErrMissingField)
}

// a decode error naming the unrecognized discriminator value
func unknownRecordType(union string, recordType string) error {
	return fmt.Errorf("%s: %q: %w", union, recordType, fault.ErrUnknownDiscriminator)
}
