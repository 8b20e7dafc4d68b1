// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - request pacing for the RPC services
//
// Each service owns one limiter shared by all of its handlers.  An
// over-limit request is slept out rather than rejected, so the error
// return only fires when a reservation is impossible.
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/userevolution/furball-dapp/fault"
)

// Limit - pace a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - pace a request that covers count items
//
// an out of range count is still charged as a single request before
// being rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {

		r := limiter.Reserve()
		if !r.OK() {
			return fault.ErrRateLimiting
		}
		time.Sleep(r.Delay())

		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}
