// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

// BlockId - position of a block in the chain
//
// not globally unique: a position can be occupied by different block
// contents across forks
type BlockId struct {
	Workchain int32 `json:"workchain"`
	Shard     Int64 `json:"shard"`
	Seqno     int32 `json:"seqno"`
}

// BlockIdExt - globally unique reference to one block's content
type BlockIdExt struct {
	Workchain int32  `json:"workchain"`
	Shard     Int64  `json:"shard"`
	Seqno     int32  `json:"seqno"`
	RootHash  string `json:"root_hash"`
	FileHash  string `json:"file_hash"`
}

// ToBlockId - drop the content hashes, keeping only the position
func (id BlockIdExt) ToBlockId() BlockId {
	return BlockId{
		Workchain: id.Workchain,
		Shard:     id.Shard,
		Seqno:     id.Seqno,
	}
}
