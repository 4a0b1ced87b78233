// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
)

// PChanConfig - fixed parameters of a payment channel
type PChanConfig struct {
	AlicePublicKey string         `json:"alice_public_key"`
	AliceAddress   AccountAddress `json:"alice_address"`
	BobPublicKey   string         `json:"bob_public_key"`
	BobAddress     AccountAddress `json:"bob_address"`
	InitTimeout    int32          `json:"init_timeout"`
	CloseTimeout   int32          `json:"close_timeout"`
	ChannelId      int64          `json:"channel_id"`
}

// PChanState - lifecycle phase of a payment channel
//
// note the mixed case wire names (signed_A, min_A, A): these are part
// of the tonlib schema and must not be lower-cased
type PChanState interface {
	isPChanState()
}

// PChanStateInit - both parties are still signing the channel open
type PChanStateInit struct {
	SignedA  bool  `json:"signed_A"`
	SignedB  bool  `json:"signed_B"`
	MinA     int64 `json:"min_A"`
	MinB     int64 `json:"min_B"`
	ExpireAt int64 `json:"expire_at"`
	A        int64 `json:"A"`
	B        int64 `json:"B"`
}

// PChanStateClose - the channel is being cooperatively closed
type PChanStateClose struct {
	SignedA  bool  `json:"signed_A"`
	SignedB  bool  `json:"signed_B"`
	MinA     int64 `json:"min_A"`
	MinB     int64 `json:"min_B"`
	ExpireAt int64 `json:"expire_at"`
	A        int64 `json:"A"`
	B        int64 `json:"B"`
}

// PChanStatePayout - final balances are being paid out
type PChanStatePayout struct {
	A int64 `json:"A"`
	B int64 `json:"B"`
}

func (*PChanStateInit) isPChanState()   {}
func (*PChanStateClose) isPChanState()  {}
func (*PChanStatePayout) isPChanState() {}

func (s PChanStateInit) MarshalJSON() ([]byte, error) {
	type pChanStateInit PChanStateInit
	return json.Marshal(struct {
		Type string `json:"@type"`
		pChanStateInit
	}{
		Type:           "pchan.stateInit",
		pChanStateInit: pChanStateInit(s),
	})
}

func (s PChanStateClose) MarshalJSON() ([]byte, error) {
	type pChanStateClose PChanStateClose
	return json.Marshal(struct {
		Type string `json:"@type"`
		pChanStateClose
	}{
		Type:            "pchan.stateClose",
		pChanStateClose: pChanStateClose(s),
	})
}

func (s PChanStatePayout) MarshalJSON() ([]byte, error) {
	type pChanStatePayout PChanStatePayout
	return json.Marshal(struct {
		Type string `json:"@type"`
		pChanStatePayout
	}{
		Type:             "pchan.statePayout",
		pChanStatePayout: pChanStatePayout(s),
	})
}

// UnmarshalPChanState - select and decode a channel state variant
func UnmarshalPChanState(data []byte) (PChanState, error) {
	record, err := parseRecord(data)
	if nil != err {
		return nil, err
	}
	switch recordType := record.recordType(); recordType {

	case "pchan.stateInit":
		if err := record.require(recordType, "signed_A", "signed_B", "min_A", "min_B", "expire_at", "A", "B"); nil != err {
			return nil, err
		}
		v := &PChanStateInit{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "pchan.stateClose":
		if err := record.require(recordType, "signed_A", "signed_B", "min_A", "min_B", "expire_at", "A", "B"); nil != err {
			return nil, err
		}
		v := &PChanStateClose{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "pchan.statePayout":
		if err := record.require(recordType, "A", "B"); nil != err {
			return nil, err
		}
		v := &PChanStatePayout{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	default:
		return nil, unknownRecordType("PChanState", recordType)
	}
}
