package seqs

import (
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger installs the logger that reports deferred-state construction at
// debug level. It must not be called while pipelines are running.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// block is the deferred state behind an operator: built by the first pull of
// any pass, then shared by every pass of the same Lazy. The ready flag is not
// synchronized.
type block[S any] struct {
	op    string
	build func() (S, int)
	state S
	ready bool
}

// newBlock defers build until the first get. build also reports how many
// elements it consumed, for logging.
func newBlock[S any](op string, build func() (S, int)) *block[S] {
	return &block[S]{op: op, build: build}
}

func (b *block[S]) get() S {
	if !b.ready {
		start := time.Now()
		state, n := b.build()
		b.state = state
		b.ready = true
		b.build = nil
		logger.Debug().
			Str("op", b.op).
			Int("elements", n).
			Dur("took", time.Since(start)).
			Msg("deferred state built")
	}
	return b.state
}
