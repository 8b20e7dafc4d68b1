// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. amount    = big endian unsigned 128 bit value (16 bytes)
// 4. index     = successive insertion value as big endian uint64 (8 bytes)
// 5. account   = account identifier string (not NUL terminated)
// 6. cid       = content identifier string (not NUL terminated)
// 7. 0x00      = single NUL separator byte, valid since identifiers
//                never contain NUL
//
// Artworks:
//
//   A ++ art cid                         - registered token record
//                                          data: cost ++ supply ++ artist
//   N                                    - next art list index
//                                          data: index
//   L ++ index                           - art cids in registration order
//                                          data: art cid
//   O ++ original cid                    - derived artwork of an original
//                                          data: art cid
//
// Ledger:
//
//   Q ++ art cid ++ 00 ++ owner          - balance quantity for one owner
//                                          data: amount
//   W ++ art cid ++ 00 ++ owner ++ 00 ++ spender
//                                        - allowance granted owner → spender
//                                          data: amount
//
// Marketplace:
//
//   S ++ art cid ++ 00 ++ seller         - seller set membership
//                                          data: (empty)
//
// Profiles:
//
//   P ++ artist                          - profile cid for an artist
//                                          data: profile cid
//
// Balance and allowance entries are written on first touch and are
// never deleted, so the presence of a Q entry records that an account
// ever held tokens of that artwork.
package storage
