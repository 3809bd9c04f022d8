package control

import (
	"context"
	"sync"
	"time"

	"CoCTimers/timer"

	log "github.com/sirupsen/logrus"
)

// TickInterval is the real time between two ticks.
const TickInterval = time.Second

const (
	commandBuffer  = 256
	enqueueTimeout = 150 * time.Millisecond
)

// Loop owns a timer.Registry and is the only goroutine that touches it. It
// applies queued commands and one tick per TickInterval, publishing a fresh
// timer.View after each.
type Loop struct {
	registry *timer.Registry
	clock    Clock
	cmdCh    chan Command
	onUpdate func(timer.View)
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithRegistry makes the loop drive an existing registry.
func WithRegistry(r *timer.Registry) Option {
	return func(l *Loop) { l.registry = r }
}

// NewLoop creates a loop. onUpdate is called from the loop goroutine and
// must not block for long.
func NewLoop(onUpdate func(timer.View), opts ...Option) *Loop {
	l := &Loop{
		clock:    SystemClock,
		cmdCh:    make(chan Command, commandBuffer),
		onUpdate: onUpdate,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = timer.NewRegistry()
	}
	return l
}

// Enqueue posts a command to the loop. It gives up after a short timeout so
// the UI never blocks indefinitely, and reports whether the command was queued.
func (l *Loop) Enqueue(cmd Command) bool {
	select {
	case l.cmdCh <- cmd:
		return true
	case <-time.After(enqueueTimeout):
		log.WithField("command", cmd.Type).Warn("enqueue timeout: dropping command")
		return false
	}
}

// Handle controls a running loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the loop and waits for it to exit. No tick or update is
// delivered after Stop returns. It is safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start runs the loop in a new goroutine until ctx is cancelled or the
// returned handle is stopped. Start must be called at most once.
func (l *Loop) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	go l.run(ctx, h.done)
	return h
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := l.clock.NewTicker(TickInterval)
	defer ticker.Stop()

	l.publish(nil)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if ctx.Err() != nil {
				return
			}
			res := l.registry.Tick()
			if len(res.Expired) > 0 {
				log.WithField("count", len(res.Expired)).Debug("timers expired")
			}
			l.publish(res.Expired)
		case cmd := <-l.cmdCh:
			l.apply(cmd)
			l.publish(nil)
		}
	}
}

func (l *Loop) apply(cmd Command) {
	switch cmd.Type {
	case CmdAdd:
		if id, ok := l.registry.Add(cmd.Input, cmd.Category); ok {
			log.WithFields(log.Fields{"id": id, "category": cmd.Category}).Debug("timer added")
		}
	case CmdRemove:
		l.registry.Remove(cmd.ID)
	case CmdClear:
		l.registry.Clear()
	case CmdSetMultiplier:
		l.registry.SetMultiplierEnabled(cmd.Category, cmd.Enabled)
	default:
		log.Printf("unknown command type %d", cmd.Type)
	}

	if cmd.Reply != nil {
		select {
		case cmd.Reply <- nil:
		default:
		}
	}
}

func (l *Loop) publish(expired []timer.Timer) {
	if l.onUpdate == nil {
		return
	}
	v := l.registry.Snapshot()
	v.Expired = expired
	l.onUpdate(v)
}
