// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/userevolution/furball-dapp/fault"
)

// Batch - a set of staged writes applied atomically by Commit
//
// an abandoned batch leaves the database untouched, which gives each
// operation its all-or-nothing behaviour
type Batch struct {
	batch leveldb.Batch
}

// NewBatch - create an empty staging batch
func NewBatch() *Batch {
	return &Batch{}
}

// PutBatch - stage a key/value pair into the batch
func (p *PoolHandle) PutBatch(b *Batch, key []byte, value []byte) {
	b.batch.Put(p.prefixKey(key), value)
}

// DeleteBatch - stage a key removal into the batch
func (p *PoolHandle) DeleteBatch(b *Batch, key []byte) {
	b.batch.Delete(p.prefixKey(key))
}

// Commit - apply all staged writes as one database write
func (b *Batch) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return fault.ErrNotInitialised
	}
	return poolData.db.Write(&b.batch, nil)
}
