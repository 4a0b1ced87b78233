// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
)

// SmcInfo - handle to a loaded smart contract instance
type SmcInfo struct {
	Id Int64 `json:"id"`
}

// SmcMethodId - a get method selector, by number or by name
type SmcMethodId interface {
	isSmcMethodId()
}

// SmcMethodIdNumber - method selected by its numeric id
type SmcMethodIdNumber struct {
	Number int32 `json:"number"`
}

// SmcMethodIdName - method selected by its name
type SmcMethodIdName struct {
	Name string `json:"name"`
}

func (*SmcMethodIdNumber) isSmcMethodId() {}
func (*SmcMethodIdName) isSmcMethodId()   {}

func (m SmcMethodIdNumber) MarshalJSON() ([]byte, error) {
	type smcMethodIdNumber SmcMethodIdNumber
	return json.Marshal(struct {
		Type string `json:"@type"`
		smcMethodIdNumber
	}{
		Type:              "smc.methodIdNumber",
		smcMethodIdNumber: smcMethodIdNumber(m),
	})
}

func (m SmcMethodIdName) MarshalJSON() ([]byte, error) {
	type smcMethodIdName SmcMethodIdName
	return json.Marshal(struct {
		Type string `json:"@type"`
		smcMethodIdName
	}{
		Type:            "smc.methodIdName",
		smcMethodIdName: smcMethodIdName(m),
	})
}

// UnmarshalSmcMethodId - select and decode a method id variant
func UnmarshalSmcMethodId(data []byte) (SmcMethodId, error) {
	record, err := parseRecord(data)
	if nil != err {
		return nil, err
	}
	switch recordType := record.recordType(); recordType {

	case "smc.methodIdNumber":
		if err := record.require(recordType, "number"); nil != err {
			return nil, err
		}
		v := &SmcMethodIdNumber{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "smc.methodIdName":
		if err := record.require(recordType, "name"); nil != err {
			return nil, err
		}
		v := &SmcMethodIdName{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	default:
		return nil, unknownRecordType("SmcMethodId", recordType)
	}
}

// SmcRunResult - result of running a get method
type SmcRunResult struct {
	GasUsed  int64    `json:"gas_used"`
	Stack    TvmStack `json:"stack"`
	ExitCode int32    `json:"exit_code"`
}

// ConfigInfo - a blockchain configuration parameter cell
type ConfigInfo struct {
	Config TvmCell `json:"config"`
}
