// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AminRezaei0x443/tonlib-go/fault"
	"github.com/AminRezaei0x443/tonlib-go/tl"
)

// decode each account state variant and check that re-encoding
// reproduces the discriminator and field set
func TestAccountStateRoundTrip(t *testing.T) {
	testData := []struct {
		payload  string
		expected tl.AccountState
	}{
		{
			`{"@type":"raw.accountState","code":"3q2+7w==","data":"AAE=","frozen_hash":""}`,
			&tl.RawAccountState{
				Code:       tl.Bytes{0xde, 0xad, 0xbe, 0xef},
				Data:       tl.Bytes{0x00, 0x01},
				FrozenHash: tl.Bytes{},
			},
		},
		{
			`{"@type":"wallet.v3.accountState","wallet_id":"698983191","seqno":42}`,
			&tl.WalletV3AccountState{WalletId: 698983191, Seqno: 42},
		},
		{
			`{"@type":"wallet.highload.v1.accountState","wallet_id":698983191,"seqno":7}`,
			&tl.WalletHighloadV1AccountState{WalletId: 698983191, Seqno: 7},
		},
		{
			`{"@type":"wallet.highload.v2.accountState","wallet_id":"698983191"}`,
			&tl.WalletHighloadV2AccountState{WalletId: 698983191},
		},
		{
			`{"@type":"dns.accountState","wallet_id":"123"}`,
			&tl.DnsAccountState{WalletId: 123},
		},
		{
			`{"@type":"rwallet.accountState","wallet_id":1,"seqno":2,"unlocked_balance":"1000000000","config":{"start_at":"1650000000","limits":[{"seconds":60,"value":"500"}]}}`,
			&tl.RWalletAccountState{
				WalletId:        1,
				Seqno:           2,
				UnlockedBalance: 1000000000,
				Config: tl.RWalletConfig{
					StartAt: 1650000000,
					Limits:  []tl.RWalletLimit{{Seconds: 60, Value: 500}},
				},
			},
		},
		{
			`{"@type":"uninited.accountState","frozen_hash":"3q2+7w=="}`,
			&tl.UninitedAccountState{FrozenHash: tl.Bytes{0xde, 0xad, 0xbe, 0xef}},
		},
	}

	for i, item := range testData {
		state, err := tl.UnmarshalAccountState([]byte(item.payload))
		if nil != err {
			t.Fatalf("%d: unmarshal error: %s", i, err)
		}
		if !reflect.DeepEqual(item.expected, state) {
			t.Errorf("%d: state: %#v  expected: %#v", i, state, item.expected)
		}

		encoded, err := json.Marshal(state)
		if nil != err {
			t.Fatalf("%d: marshal error: %s", i, err)
		}

		// decoding the re-encoded form must yield the same value
		again, err := tl.UnmarshalAccountState(encoded)
		if nil != err {
			t.Fatalf("%d: re-unmarshal error: %s", i, err)
		}
		if !reflect.DeepEqual(item.expected, again) {
			t.Errorf("%d: state: %#v  expected: %#v", i, again, item.expected)
		}
	}
}

// the discriminator is emitted verbatim and first
func TestAccountStateMarshalling(t *testing.T) {
	encoded, err := json.Marshal(&tl.WalletV3AccountState{WalletId: 698983191, Seqno: 42})
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	expected := `{"@type":"wallet.v3.accountState","wallet_id":698983191,"seqno":42}`
	if expected != string(encoded) {
		t.Errorf("encoded: %s  expected: %s", encoded, expected)
	}
}

func TestAccountStateUnknownType(t *testing.T) {
	testData := []string{
		`{"@type":"wallet.v5.accountState","wallet_id":1}`,
		`{"wallet_id":1}`,
		`{"@type":42}`,
	}

	for i, payload := range testData {
		_, err := tl.UnmarshalAccountState([]byte(payload))
		if !errors.Is(err, fault.ErrUnknownDiscriminator) {
			t.Errorf("%d: error: %v  expected: %v", i, err, fault.ErrUnknownDiscriminator)
		}
	}
}

// a missing required field names both the variant and the field
func TestAccountStateMissingField(t *testing.T) {
	_, err := tl.UnmarshalAccountState([]byte(`{"@type":"wallet.v3.accountState","seqno":42}`))
	if !errors.Is(err, fault.ErrMissingField) {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrMissingField)
	}
	if !strings.Contains(err.Error(), "wallet.v3.accountState") {
		t.Errorf("error does not name the variant: %v", err)
	}
	if !strings.Contains(err.Error(), "wallet_id") {
		t.Errorf("error does not name the field: %v", err)
	}
}

// fields not declared by the variant are ignored
func TestAccountStateExtraFields(t *testing.T) {
	payload := `{"@type":"dns.accountState","wallet_id":5,"future_field":true}`
	state, err := tl.UnmarshalAccountState([]byte(payload))
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	dns, ok := state.(*tl.DnsAccountState)
	if !ok {
		t.Fatalf("did not unmarshal to DnsAccountState")
	}
	if 5 != dns.WalletId {
		t.Errorf("wallet id: %d  expected: 5", dns.WalletId)
	}
}

func TestFullAccountState(t *testing.T) {
	payload := `{
		"address": {"account_address": "EQAW3iupIDrCICc7SbcY_SBP6jCNO-F8v91dG9XNLHw2hgP_"},
		"balance": "989096107",
		"last_transaction_id": {"lt": "33256211000003", "hash": "` + hashBase64 + `"},
		"block_id": {"workchain": -1, "shard": "-9223372036854775808", "seqno": 28235056, "root_hash": "ZXh0cmE=", "file_hash": "aGFzaA=="},
		"sync_utime": 1650478217,
		"account_state": {"@type": "wallet.v3.accountState", "wallet_id": "698983191", "seqno": 299},
		"revision": 2
	}`

	var state tl.FullAccountState
	err := json.Unmarshal([]byte(payload), &state)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}

	if "EQAW3iupIDrCICc7SbcY_SBP6jCNO-F8v91dG9XNLHw2hgP_" != state.Address.AccountAddress {
		t.Errorf("address: %s", state.Address.AccountAddress)
	}
	if 989096107 != state.Balance {
		t.Errorf("balance: %d  expected: 989096107", state.Balance)
	}
	if "33256211000003:"+hashHex != state.LastTransactionId.String() {
		t.Errorf("last transaction id: %s", state.LastTransactionId.String())
	}
	if -1 != state.BlockId.Workchain {
		t.Errorf("workchain: %d  expected: -1", state.BlockId.Workchain)
	}
	if -9223372036854775808 != state.BlockId.Shard {
		t.Errorf("shard: %d", state.BlockId.Shard)
	}
	wallet, ok := state.AccountState.(*tl.WalletV3AccountState)
	if !ok {
		t.Fatalf("account state is %#v  expected a WalletV3AccountState", state.AccountState)
	}
	if 698983191 != wallet.WalletId || 299 != wallet.Seqno {
		t.Errorf("wallet: %#v", wallet)
	}
	if 2 != state.Revision {
		t.Errorf("revision: %d  expected: 2", state.Revision)
	}

	_, err = tl.UnmarshalAccountState([]byte(`{"@type":"sith.accountState"}`))
	if !errors.Is(err, fault.ErrUnknownDiscriminator) {
		t.Errorf("error: %v  expected: %v", err, fault.ErrUnknownDiscriminator)
	}
}

func TestRawFullAccountState(t *testing.T) {
	payload := `{
		"balance": 989096107,
		"code": "3q2+7w==",
		"data": "",
		"last_transaction_id": {"lt": "0", "hash": "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="},
		"block_id": {"workchain": 0, "shard": "8000000000000000", "seqno": 100, "root_hash": "cg==", "file_hash": "Zg=="},
		"frozen_hash": "",
		"sync_utime": "1650478217"
	}`

	var state tl.RawFullAccountState
	err := json.Unmarshal([]byte(payload), &state)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if 989096107 != state.Balance {
		t.Errorf("balance: %d  expected: 989096107", state.Balance)
	}
	if tl.NullTransactionId != state.LastTransactionId {
		t.Errorf("last transaction id: %#v  expected the null sentinel", state.LastTransactionId)
	}
	if 1650478217 != state.SyncUtime {
		t.Errorf("sync utime: %d  expected: 1650478217", state.SyncUtime)
	}
}
