package merge

import (
	"fmt"
	"time"
)

// LogCategory classifies a log entry recorded on a Context.
type LogCategory int

// Log categories, mirroring a build context's progress/warning/error
// stream.
const (
	LogProgress LogCategory = iota
	LogWarning
	LogError
)

// TimerLabel names one of the coarse phases of a merge, for
// Context.StartTimer/StopTimer.
type TimerLabel int

// The merge phases a Context can time, matching the merger's own
// incoming-ray / chain-walk / outgoing-ray / assemble state machine.
const (
	TimerIncomingRay TimerLabel = iota
	TimerChainWalk
	TimerOutgoingRay
	TimerAssemble
	timerCount
)

// Context accompanies a single Merge call. It is cheap to construct
// and, with logging and timers disabled (the default), every method on
// it is a no-op: enabling either is purely a debugging aid, never
// required for correctness.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	messages []string

	startTime [timerCount]time.Time
	accTime   [timerCount]time.Duration
}

// NewContext returns a Context with logging and timers both set to
// state.
func NewContext(state bool) *Context {
	return &Context{logEnabled: state, timerEnabled: state}
}

// defaultContext is substituted whenever Merge is called with a nil
// Context, so callers who don't care about diagnostics never need to
// construct one.
func defaultContext() *Context {
	return NewContext(false)
}

// EnableLog enables or disables logging.
func (ctx *Context) EnableLog(state bool) { ctx.logEnabled = state }

// EnableTimers enables or disables the performance timers.
func (ctx *Context) EnableTimers(state bool) { ctx.timerEnabled = state }

// Logf records a formatted message under category, if logging is
// enabled.
func (ctx *Context) Logf(category LogCategory, format string, args ...interface{}) {
	if !ctx.logEnabled {
		return
	}
	var prefix string
	switch category {
	case LogProgress:
		prefix = "PROG "
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	ctx.messages = append(ctx.messages, prefix+fmt.Sprintf(format, args...))
}

// Messages returns the log entries recorded so far.
func (ctx *Context) Messages() []string {
	return ctx.messages
}

// StartTimer starts the timer for label, if timers are enabled.
func (ctx *Context) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the timer for label and accumulates the elapsed
// time, if timers are enabled.
func (ctx *Context) StopTimer(label TimerLabel) {
	if !ctx.timerEnabled {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
}

// AccumulatedTime returns the total time spent in label across all
// StartTimer/StopTimer pairs, or zero if timers are disabled.
func (ctx *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
