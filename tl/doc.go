// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tl - records of the tonlib TL wire schema
//
// Every polymorphic record on the wire is a JSON object carrying a
// string field named "@type" that names the active variant of a
// closed union. Discriminator strings and field names are the
// compatibility surface and must match the tonlib schema
// byte-for-byte.
//
// Field encoding:
//
//	binary data   - base64 string, standard alphabet, padded
//	large integer - native JSON number or quoted decimal string on
//	                input, always a native number on output
//
// All record values are immutable after decoding: a decode either
// fully succeeds or fails without producing a partial record.
package tl
