// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package interrupt turns SIGINT and SIGTERM into context cancellation, so
// long running tool commands can stop between two steps.
package interrupt

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hanan-ElNaghy/DGtal/common"
)

const ErrCanceled = common.ConstError("interrupted")

// IsCancelled reports whether the context has been cancelled.
func IsCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Register returns a context that is cancelled on the first SIGINT or
// SIGTERM, or when the parent is done. The returned release function
// cancels the context and stops listening for signals. It must be called
// once the context is no longer needed.
func Register(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			log.Printf("received %v, stopping after the current step", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		cancel()
		<-done
	}
}
