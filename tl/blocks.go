// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

// LiteServerInfo - version banner of the connected lite server
type LiteServerInfo struct {
	Now          Int64 `json:"now"`
	Version      Int32 `json:"version"`
	Capabilities Int64 `json:"capabilities"`
}

// BlocksMasterchainInfo - current head of the masterchain
type BlocksMasterchainInfo struct {
	Last          BlockIdExt `json:"last"`
	StateRootHash Bytes      `json:"state_root_hash"`
	Init          BlockIdExt `json:"init"`
}

// BlocksShards - shard blocks referenced by a masterchain block
type BlocksShards struct {
	Shards []BlockIdExt `json:"shards"`
}

// BlocksAccountTransactionId - position of a transaction inside a
// block, keyed by account
//
// this is a different identifier family from InternalTransactionId
// and the two must not be interchanged, even though both carry a
// logical time and 32 bytes
type BlocksAccountTransactionId struct {
	Account Hash  `json:"account"`
	Lt      Int64 `json:"lt"`
}

// NullBlocksAccountTransactionId - the "start from the beginning"
// marker used when listing block transactions
//
// read-only: never modify this value
var NullBlocksAccountTransactionId = BlocksAccountTransactionId{
	Account: Hash{},
	Lt:      0,
}

// BlocksShortTxId - abbreviated transaction reference in a block
type BlocksShortTxId struct {
	Mode    uint32 `json:"mode"`
	Account Bytes  `json:"account"`
	Lt      Int64  `json:"lt"`
	Hash    Bytes  `json:"hash"`
}

// BlocksTransactions - one page of a block's transaction list
type BlocksTransactions struct {
	Id           BlockIdExt        `json:"id"`
	ReqCount     int32             `json:"req_count"`
	Incomplete   bool              `json:"incomplete"`
	Transactions []BlocksShortTxId `json:"transactions"`
}

// BlocksHeader - decoded header of a single block
type BlocksHeader struct {
	Id                     BlockIdExt   `json:"id"`
	GlobalId               int32        `json:"global_id"`
	Version                int32        `json:"version"`
	Flags                  int32        `json:"flags"`
	AfterMerge             bool         `json:"after_merge"`
	AfterSplit             bool         `json:"after_split"`
	BeforeSplit            bool         `json:"before_split"`
	WantMerge              bool         `json:"want_merge"`
	WantSplit              bool         `json:"want_split"`
	ValidatorListHashShort int32        `json:"validator_list_hash_short"`
	CatchainSeqno          int32        `json:"catchain_seqno"`
	MinRefMcSeqno          int32        `json:"min_ref_mc_seqno"`
	IsKeyBlock             bool         `json:"is_key_block"`
	PrevKeyBlockSeqno      int32        `json:"prev_key_block_seqno"`
	StartLt                Int64        `json:"start_lt"`
	EndLt                  Int64        `json:"end_lt"`
	GenUtime               Int64        `json:"gen_utime"`
	VertSeqno              int32        `json:"vert_seqno"`
	PrevBlocks             []BlockIdExt `json:"prev_blocks"`
}
