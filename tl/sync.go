// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
)

// SyncState - progress of the block synchronisation
type SyncState interface {
	isSyncState()
}

// SyncStateDone - synchronisation finished
type SyncStateDone struct {
}

// SyncStateInProgress - synchronisation running
type SyncStateInProgress struct {
	FromSeqno    int32 `json:"from_seqno"`
	ToSeqno      int32 `json:"to_seqno"`
	CurrentSeqno int32 `json:"current_seqno"`
}

func (*SyncStateDone) isSyncState()       {}
func (*SyncStateInProgress) isSyncState() {}

func (s SyncStateDone) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"@type"`
	}{
		Type: "syncStateDone",
	})
}

func (s SyncStateInProgress) MarshalJSON() ([]byte, error) {
	type syncStateInProgress SyncStateInProgress
	return json.Marshal(struct {
		Type string `json:"@type"`
		syncStateInProgress
	}{
		Type:                "syncStateInProgress",
		syncStateInProgress: syncStateInProgress(s),
	})
}

// UnmarshalSyncState - select and decode a sync state variant
func UnmarshalSyncState(data []byte) (SyncState, error) {
	record, err := parseRecord(data)
	if nil != err {
		return nil, err
	}
	switch recordType := record.recordType(); recordType {

	case "syncStateDone":
		return &SyncStateDone{}, nil

	case "syncStateInProgress":
		if err := record.require(recordType, "from_seqno", "to_seqno", "current_seqno"); nil != err {
			return nil, err
		}
		v := &SyncStateInProgress{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	default:
		return nil, unknownRecordType("SyncState", recordType)
	}
}

// UpdateSyncState - unsolicited sync progress notification
type UpdateSyncState struct {
	SyncState SyncState `json:"sync_state"`
}

func (u *UpdateSyncState) UnmarshalJSON(data []byte) error {
	aux := struct {
		SyncState json.RawMessage `json:"sync_state"`
	}{}
	if err := json.Unmarshal(data, &aux); nil != err {
		return err
	}
	if nil == aux.SyncState {
		return missingField("updateSyncState", "sync_state")
	}
	syncState, err := UnmarshalSyncState(aux.SyncState)
	if nil != err {
		return err
	}
	u.SyncState = syncState
	return nil
}
