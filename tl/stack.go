// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
)

// TvmCell - a serialized TVM cell
//
// the cell content is an opaque bag-of-cells blob; this layer never
// looks inside it
type TvmCell struct {
	Bytes Bytes `json:"bytes"`
}

func (c TvmCell) MarshalJSON() ([]byte, error) {
	type tvmCell TvmCell
	return json.Marshal(struct {
		Type string `json:"@type"`
		tvmCell
	}{
		Type:    "tvm.cell",
		tvmCell: tvmCell(c),
	})
}

// TvmStack - a TVM stack as returned by a get method
//
// stack entries are kept as raw wire values: their structure belongs
// to the TVM layer, not to this schema
type TvmStack []json.RawMessage
