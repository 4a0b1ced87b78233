// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/AminRezaei0x443/tonlib-go/fault"
)

var (
	ErrInvalidOne = fault.InvalidError("invalid one")
	ErrInvalidTwo = fault.InvalidError("invalid two")
	ErrLengthOne  = fault.LengthError("length one")
	ErrLengthTwo  = fault.LengthError("length two")
	ErrProcessOne = fault.ProcessError("process one")
	ErrProcessTwo = fault.ProcessError("process two")
	ErrRecordOne  = fault.RecordError("record one")
	ErrRecordTwo  = fault.RecordError("record two")
)

// test that the various error classes are distinguishable
func TestClassification(t *testing.T) {
	errorList := []struct {
		err     error
		invalid bool
		length  bool
		process bool
		record  bool
	}{
		{ErrInvalidOne, true, false, false, false},
		{ErrInvalidTwo, true, false, false, false},
		{ErrLengthOne, false, true, false, false},
		{ErrLengthTwo, false, true, false, false},
		{ErrProcessOne, false, false, true, false},
		{ErrProcessTwo, false, false, true, false},
		{ErrRecordOne, false, false, false, true},
		{ErrRecordTwo, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// wrapped errors must keep their classification
func TestWrappedClassification(t *testing.T) {
	err := fmt.Errorf("some.variant.some_field: %w", fault.ErrMissingField)
	if !fault.IsErrRecord(err) {
		t.Errorf("expected 'record' classification for wrapped err = %v", err)
	}
	if fault.IsErrInvalid(err) {
		t.Errorf("unexpected 'invalid' classification for wrapped err = %v", err)
	}
}
