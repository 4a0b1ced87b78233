// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/AminRezaei0x443/tonlib-go/fault"
	"github.com/AminRezaei0x443/tonlib-go/tl"
)

func TestSyncStateRoundTrip(t *testing.T) {
	testData := []struct {
		payload  string
		expected tl.SyncState
	}{
		{
			`{"@type":"syncStateDone"}`,
			&tl.SyncStateDone{},
		},
		{
			`{"@type":"syncStateInProgress","from_seqno":100,"to_seqno":200,"current_seqno":150}`,
			&tl.SyncStateInProgress{FromSeqno: 100, ToSeqno: 200, CurrentSeqno: 150},
		},
	}

	for i, item := range testData {
		decoded, err := tl.UnmarshalSyncState([]byte(item.payload))
		if nil != err {
			t.Fatalf("%d: unmarshal error: %s", i, err)
		}
		if !reflect.DeepEqual(item.expected, decoded) {
			t.Errorf("%d: decoded: %#v  expected: %#v", i, decoded, item.expected)
		}

		encoded, err := json.Marshal(decoded)
		if nil != err {
			t.Fatalf("%d: marshal error: %s", i, err)
		}
		if item.payload != string(encoded) {
			t.Errorf("%d: encoded: %s  expected: %s", i, encoded, item.payload)
		}
	}
}

func TestSyncStateErrors(t *testing.T) {
	_, err := tl.UnmarshalSyncState([]byte(`{"@type":"syncStatePaused"}`))
	if !errors.Is(err, fault.ErrUnknownDiscriminator) {
		t.Errorf("error: %v  expected: %v", err, fault.ErrUnknownDiscriminator)
	}

	_, err = tl.UnmarshalSyncState([]byte(`{"@type":"syncStateInProgress","from_seqno":100}`))
	if !errors.Is(err, fault.ErrMissingField) {
		t.Errorf("error: %v  expected: %v", err, fault.ErrMissingField)
	}
}

func TestUpdateSyncState(t *testing.T) {
	payload := `{"@type":"updateSyncState","sync_state":{"@type":"syncStateInProgress","from_seqno":1,"to_seqno":9,"current_seqno":5}}`

	var update tl.UpdateSyncState
	err := json.Unmarshal([]byte(payload), &update)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	progress, ok := update.SyncState.(*tl.SyncStateInProgress)
	if !ok {
		t.Fatalf("sync state is %#v  expected a SyncStateInProgress", update.SyncState)
	}
	if 5 != progress.CurrentSeqno {
		t.Errorf("current seqno: %d  expected: 5", progress.CurrentSeqno)
	}

	err = json.Unmarshal([]byte(`{}`), &tl.UpdateSyncState{})
	if !errors.Is(err, fault.ErrMissingField) {
		t.Errorf("error: %v  expected: %v", err, fault.ErrMissingField)
	}
}
