package lotto

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// separatorWidth is the display width of the "~" lines framing win
// announcements and the summary block.
const separatorWidth = 60

// worker plays games against its own ticket copy until the shared state tells
// it to stop. All fields are exclusively owned by the worker goroutine except
// state, played, metrics and hooks, which are safe for concurrent use.
type worker struct {
	id       int
	ticket   Ticket
	state    *searchState
	progress *progressHandle
	drawer   *drawer
	interval time.Duration
	metrics  MetricsCollector
	hooks    *Hooks
	played   *xsync.Counter

	games       uint64
	lastPublish time.Time
}

func newWorker(id int, ticket Ticket, cfg *Config, state *searchState, progress *progressHandle,
	metrics MetricsCollector, hooks *Hooks, played *xsync.Counter,
) *worker {
	return &worker{
		id:       id,
		ticket:   ticket,
		state:    state,
		progress: progress,
		drawer:   newDrawer(cfg, ticket.maxPulls()),
		interval: cfg.ProgressInterval,
		metrics:  metrics,
		hooks:    hooks,
		played:   played,
	}
}

// run plays games until the shared state reports done and returns the final
// number of games this worker played. The producer handle is released on exit,
// including panic exit, so the bus can close.
//
// A winning iteration publishes its announcement burst and signals the win but
// still completes normally; the worker exits at the next loop-top check.
func (w *worker) run() uint64 {
	defer w.progress.Close()

	w.lastPublish = time.Now()

	for !w.state.done() {
		game := w.drawer.draw()
		w.games++
		w.played.Inc()
		w.publishThrottled()

		if w.ticket.matches(game) {
			w.announceWin(game)
			w.state.signalWin()
		}
	}

	w.metrics.RecordGames(w.id, w.games)

	return w.games
}

// publishThrottled enqueues a progress snapshot if enough wall-clock time has
// passed since this worker's last publish. The throttle bounds message volume
// regardless of iteration speed.
func (w *worker) publishThrottled() {
	now := time.Now()
	if now.Sub(w.lastPublish) <= w.interval {
		return
	}

	w.progress.publish(fmt.Sprintf("worker %d running: %d games", w.id, w.games))
	w.lastPublish = now
	w.metrics.RecordProgressPublish(w.id)
}

// announceWin publishes the win burst, bypassing the throttle.
func (w *worker) announceWin(game []int) {
	draw := Draw{
		Numbers: slices.Clone(game[:len(game)-1]),
		Bonus:   game[len(game)-1],
	}
	sep := strings.Repeat("~", separatorWidth)

	w.progress.publish(sep)
	w.progress.publish(fmt.Sprintf("You won! %s", draw))
	w.progress.publish(fmt.Sprintf("worker %d pulled your ticket after %d games.", w.id, w.games))
	w.progress.publish(sep)

	w.metrics.RecordWin(w.id, w.games)

	if w.hooks != nil && w.hooks.OnWin != nil {
		w.hooks.OnWin(w.id, draw, w.games)
	}
}
