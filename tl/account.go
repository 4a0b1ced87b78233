// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
)

// AccountAddress - a textual account address
type AccountAddress struct {
	AccountAddress string `json:"account_address"`
}

// RWalletLimit - a single spending limit of a restricted wallet
type RWalletLimit struct {
	Seconds int32 `json:"seconds"`
	Value   Int64 `json:"value"`
}

// RWalletConfig - unlock schedule of a restricted wallet
type RWalletConfig struct {
	StartAt Int64          `json:"start_at"`
	Limits  []RWalletLimit `json:"limits"`
}

// AccountState - state of an account, specialised by contract type
type AccountState interface {
	isAccountState()
}

// RawAccountState - code and data of an unrecognized contract
type RawAccountState struct {
	Code       Bytes `json:"code"`
	Data       Bytes `json:"data"`
	FrozenHash Bytes `json:"frozen_hash"`
}

// WalletV3AccountState - a wallet v3 contract
type WalletV3AccountState struct {
	WalletId Int64 `json:"wallet_id"`
	Seqno    int32 `json:"seqno"`
}

// WalletHighloadV1AccountState - a highload wallet v1 contract
type WalletHighloadV1AccountState struct {
	WalletId Int64 `json:"wallet_id"`
	Seqno    int32 `json:"seqno"`
}

// WalletHighloadV2AccountState - a highload wallet v2 contract
type WalletHighloadV2AccountState struct {
	WalletId Int64 `json:"wallet_id"`
}

// DnsAccountState - a DNS resolver contract
type DnsAccountState struct {
	WalletId Int64 `json:"wallet_id"`
}

// RWalletAccountState - a restricted wallet contract
type RWalletAccountState struct {
	WalletId        Int64         `json:"wallet_id"`
	Seqno           int32         `json:"seqno"`
	UnlockedBalance Int64         `json:"unlocked_balance"`
	Config          RWalletConfig `json:"config"`
}

// UninitedAccountState - an account with no deployed contract
type UninitedAccountState struct {
	FrozenHash Bytes `json:"frozen_hash"`
}

// PChanAccountState - a payment channel contract
type PChanAccountState struct {
	Config      PChanConfig `json:"config"`
	State       PChanState  `json:"state"`
	Description string      `json:"description"`
}

func (*RawAccountState) isAccountState()              {}
func (*WalletV3AccountState) isAccountState()         {}
func (*WalletHighloadV1AccountState) isAccountState() {}
func (*WalletHighloadV2AccountState) isAccountState() {}
func (*DnsAccountState) isAccountState()              {}
func (*RWalletAccountState) isAccountState()          {}
func (*UninitedAccountState) isAccountState()         {}
func (*PChanAccountState) isAccountState()            {}

func (s RawAccountState) MarshalJSON() ([]byte, error) {
	type rawAccountState RawAccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		rawAccountState
	}{
		Type:            "raw.accountState",
		rawAccountState: rawAccountState(s),
	})
}

func (s WalletV3AccountState) MarshalJSON() ([]byte, error) {
	type walletV3AccountState WalletV3AccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		walletV3AccountState
	}{
		Type:                 "wallet.v3.accountState",
		walletV3AccountState: walletV3AccountState(s),
	})
}

func (s WalletHighloadV1AccountState) MarshalJSON() ([]byte, error) {
	type walletHighloadV1AccountState WalletHighloadV1AccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		walletHighloadV1AccountState
	}{
		Type:                         "wallet.highload.v1.accountState",
		walletHighloadV1AccountState: walletHighloadV1AccountState(s),
	})
}

func (s WalletHighloadV2AccountState) MarshalJSON() ([]byte, error) {
	type walletHighloadV2AccountState WalletHighloadV2AccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		walletHighloadV2AccountState
	}{
		Type:                         "wallet.highload.v2.accountState",
		walletHighloadV2AccountState: walletHighloadV2AccountState(s),
	})
}

func (s DnsAccountState) MarshalJSON() ([]byte, error) {
	type dnsAccountState DnsAccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		dnsAccountState
	}{
		Type:            "dns.accountState",
		dnsAccountState: dnsAccountState(s),
	})
}

func (s RWalletAccountState) MarshalJSON() ([]byte, error) {
	type rwalletAccountState RWalletAccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		rwalletAccountState
	}{
		Type:                "rwallet.accountState",
		rwalletAccountState: rwalletAccountState(s),
	})
}

func (s UninitedAccountState) MarshalJSON() ([]byte, error) {
	type uninitedAccountState UninitedAccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		uninitedAccountState
	}{
		Type:                 "uninited.accountState",
		uninitedAccountState: uninitedAccountState(s),
	})
}

func (s PChanAccountState) MarshalJSON() ([]byte, error) {
	type pChanAccountState PChanAccountState
	return json.Marshal(struct {
		Type string `json:"@type"`
		pChanAccountState
	}{
		Type:              "pchan.accountState",
		pChanAccountState: pChanAccountState(s),
	})
}

func (s *PChanAccountState) UnmarshalJSON(data []byte) error {
	type pChanAccountState PChanAccountState
	aux := struct {
		*pChanAccountState
		State json.RawMessage `json:"state"`
	}{
		pChanAccountState: (*pChanAccountState)(s),
	}
	if err := json.Unmarshal(data, &aux); nil != err {
		return err
	}
	if nil == aux.State {
		return missingField("pchan.accountState", "state")
	}
	state, err := UnmarshalPChanState(aux.State)
	if nil != err {
		return err
	}
	s.State = state
	return nil
}

// UnmarshalAccountState - select and decode an account state variant
func UnmarshalAccountState(data []byte) (AccountState, error) {
	record, err := parseRecord(data)
	if nil != err {
		return nil, err
	}
	switch recordType := record.recordType(); recordType {

	case "raw.accountState":
		if err := record.require(recordType, "code", "data", "frozen_hash"); nil != err {
			return nil, err
		}
		v := &RawAccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "wallet.v3.accountState":
		if err := record.require(recordType, "wallet_id", "seqno"); nil != err {
			return nil, err
		}
		v := &WalletV3AccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "wallet.highload.v1.accountState":
		if err := record.require(recordType, "wallet_id", "seqno"); nil != err {
			return nil, err
		}
		v := &WalletHighloadV1AccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "wallet.highload.v2.accountState":
		if err := record.require(recordType, "wallet_id"); nil != err {
			return nil, err
		}
		v := &WalletHighloadV2AccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "dns.accountState":
		if err := record.require(recordType, "wallet_id"); nil != err {
			return nil, err
		}
		v := &DnsAccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "rwallet.accountState":
		if err := record.require(recordType, "wallet_id", "seqno", "unlocked_balance", "config"); nil != err {
			return nil, err
		}
		v := &RWalletAccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "uninited.accountState":
		if err := record.require(recordType, "frozen_hash"); nil != err {
			return nil, err
		}
		v := &UninitedAccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "pchan.accountState":
		if err := record.require(recordType, "config", "state", "description"); nil != err {
			return nil, err
		}
		v := &PChanAccountState{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	default:
		return nil, unknownRecordType("AccountState", recordType)
	}
}

// RawFullAccountState - full account state in raw form
type RawFullAccountState struct {
	Balance           Int64                 `json:"balance"`
	Code              Bytes                 `json:"code"`
	Data              Bytes                 `json:"data"`
	LastTransactionId InternalTransactionId `json:"last_transaction_id"`
	BlockId           BlockIdExt            `json:"block_id"`
	FrozenHash        Bytes                 `json:"frozen_hash"`
	SyncUtime         Int64                 `json:"sync_utime"`
}

// FullAccountState - full account state with the contract recognized
type FullAccountState struct {
	Address           AccountAddress        `json:"address"`
	Balance           Int64                 `json:"balance"`
	LastTransactionId InternalTransactionId `json:"last_transaction_id"`
	BlockId           BlockIdExt            `json:"block_id"`
	SyncUtime         Int64                 `json:"sync_utime"`
	AccountState      AccountState          `json:"account_state"`
	Revision          int32                 `json:"revision"`
}

func (s *FullAccountState) UnmarshalJSON(data []byte) error {
	type fullAccountState FullAccountState
	aux := struct {
		*fullAccountState
		AccountState json.RawMessage `json:"account_state"`
	}{
		fullAccountState: (*fullAccountState)(s),
	}
	if err := json.Unmarshal(data, &aux); nil != err {
		return err
	}
	if nil == aux.AccountState {
		return missingField("fullAccountState", "account_state")
	}
	state, err := UnmarshalAccountState(aux.AccountState)
	if nil != err {
		return err
	}
	s.AccountState = state
	return nil
}
