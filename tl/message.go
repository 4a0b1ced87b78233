// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
)

// MsgData - payload of a message body
type MsgData interface {
	isMsgData()
}

// MsgDataRaw - opaque body and optional init state cells
type MsgDataRaw struct {
	Body      Bytes `json:"body"`
	InitState Bytes `json:"init_state"`
}

// MsgDataText - plain text body
type MsgDataText struct {
	Text Bytes `json:"text"`
}

// MsgDataDecryptedText - decrypted text body
type MsgDataDecryptedText struct {
	Text Bytes `json:"text"`
}

// MsgDataEncryptedText - encrypted text body
type MsgDataEncryptedText struct {
	Text Bytes `json:"text"`
}

func (*MsgDataRaw) isMsgData()           {}
func (*MsgDataText) isMsgData()          {}
func (*MsgDataDecryptedText) isMsgData() {}
func (*MsgDataEncryptedText) isMsgData() {}

func (d MsgDataRaw) MarshalJSON() ([]byte, error) {
	type msgDataRaw MsgDataRaw
	return json.Marshal(struct {
		Type string `json:"@type"`
		msgDataRaw
	}{
		Type:       "msg.dataRaw",
		msgDataRaw: msgDataRaw(d),
	})
}

func (d MsgDataText) MarshalJSON() ([]byte, error) {
	type msgDataText MsgDataText
	return json.Marshal(struct {
		Type string `json:"@type"`
		msgDataText
	}{
		Type:        "msg.dataText",
		msgDataText: msgDataText(d),
	})
}

func (d MsgDataDecryptedText) MarshalJSON() ([]byte, error) {
	type msgDataDecryptedText MsgDataDecryptedText
	return json.Marshal(struct {
		Type string `json:"@type"`
		msgDataDecryptedText
	}{
		Type:                 "msg.dataDecryptedText",
		msgDataDecryptedText: msgDataDecryptedText(d),
	})
}

func (d MsgDataEncryptedText) MarshalJSON() ([]byte, error) {
	type msgDataEncryptedText MsgDataEncryptedText
	return json.Marshal(struct {
		Type string `json:"@type"`
		msgDataEncryptedText
	}{
		Type:                 "msg.dataEncryptedText",
		msgDataEncryptedText: msgDataEncryptedText(d),
	})
}

// UnmarshalMsgData - select and decode a message data variant
func UnmarshalMsgData(data []byte) (MsgData, error) {
	record, err := parseRecord(data)
	if nil != err {
		return nil, err
	}
	switch recordType := record.recordType(); recordType {

	case "msg.dataRaw":
		if err := record.require(recordType, "body", "init_state"); nil != err {
			return nil, err
		}
		v := &MsgDataRaw{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "msg.dataText":
		if err := record.require(recordType, "text"); nil != err {
			return nil, err
		}
		v := &MsgDataText{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "msg.dataDecryptedText":
		if err := record.require(recordType, "text"); nil != err {
			return nil, err
		}
		v := &MsgDataDecryptedText{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "msg.dataEncryptedText":
		if err := record.require(recordType, "text"); nil != err {
			return nil, err
		}
		v := &MsgDataEncryptedText{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	default:
		return nil, unknownRecordType("MsgData", recordType)
	}
}

// RawMessage - a single inbound or outbound message of a transaction
type RawMessage struct {
	Source      AccountAddress `json:"source"`
	Destination AccountAddress `json:"destination"`
	Value       Int64          `json:"value"`
	FwdFee      Int64          `json:"fwd_fee"`
	IhrFee      Int64          `json:"ihr_fee"`
	CreatedLt   Int64          `json:"created_lt"`
	BodyHash    Bytes          `json:"body_hash"`
	MsgData     MsgData        `json:"msg_data"`
}

func (m *RawMessage) UnmarshalJSON(data []byte) error {
	type rawMessage RawMessage
	aux := struct {
		*rawMessage
		MsgData json.RawMessage `json:"msg_data"`
	}{
		rawMessage: (*rawMessage)(m),
	}
	if err := json.Unmarshal(data, &aux); nil != err {
		return err
	}
	if nil == aux.MsgData {
		return missingField("raw.message", "msg_data")
	}
	msgData, err := UnmarshalMsgData(aux.MsgData)
	if nil != err {
		return err
	}
	m.MsgData = msgData
	return nil
}

// RawTransaction - one transaction with its messages
type RawTransaction struct {
	Utime         Int64                 `json:"utime"`
	Data          Bytes                 `json:"data"`
	TransactionId InternalTransactionId `json:"transaction_id"`
	StorageFee    Int64                 `json:"storage_fee"`
	OtherFee      Int64                 `json:"other_fee"`
	InMsg         *RawMessage           `json:"in_msg,omitempty"`
	OutMsgs       []RawMessage          `json:"out_msgs"`
}

// RawTransactions - one page of an account's transaction history
//
// PreviousTransactionId points at the next older transaction; the
// null transaction id marks the end of the chain
type RawTransactions struct {
	Transactions          []RawTransaction      `json:"transactions"`
	PreviousTransactionId InternalTransactionId `json:"previous_transaction_id"`
}

// RawExtMessageInfo - receipt for an external message submission
type RawExtMessageInfo struct {
	Hash Bytes `json:"hash"`
}
