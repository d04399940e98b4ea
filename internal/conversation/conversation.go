// Package conversation runs the per-message pipeline: classify, route and,
// when routed, generate a reframe on a single background worker. Each
// message is a turn with a sequence number; generation results for turns
// that have since been superseded are dropped.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/unholyblue/bloom/internal/distortion"
	"github.com/unholyblue/bloom/internal/reframe"
	"github.com/unholyblue/bloom/internal/router"
)

// GenerationTimeout is the default bound on one reframe generation.
const GenerationTimeout = 15 * time.Second

const queueSize = 32

var (
	errQueueFull     = errors.New("generation queue full")
	errClosed        = errors.New("conversation closed")
	errEmptyResponse = errors.New("generator returned an empty response")
)

// Turn is the synchronous part of handling one message.
type Turn struct {
	Seq      uint64            `json:"sequence" yaml:"sequence"`
	Text     string            `json:"-" yaml:"-"`
	Result   distortion.Result `json:"detection" yaml:"detection"`
	Decision router.Decision   `json:"decision" yaml:"decision"`
}

// Outcome is the final answer for a turn. When Reframed is false the caller
// should continue with its normal reply; Reply is then empty.
type Outcome struct {
	Turn `yaml:",inline"`
	Reframed bool              `json:"reframed" yaml:"reframed"`
	Response *reframe.Response `json:"response,omitempty" yaml:"response,omitempty"`
	Reply    string            `json:"reply" yaml:"reply"`

	// Err records why a routed turn fell back to pass-through. It is for
	// diagnostics and is never shown to the user.
	Err error `json:"-" yaml:"-"`
}

type job struct {
	ctx   context.Context
	turn  Turn
	cb    func(Outcome)
	reply chan Outcome // set by Respond; delivered even if stale
}

// Conversation tracks turns for one user. It is safe for concurrent use.
type Conversation struct {
	gen     reframe.Generator
	timeout time.Duration

	seq     atomic.Uint64
	jobs    chan job
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithGenerationTimeout overrides GenerationTimeout. Non-positive values
// are ignored.
func WithGenerationTimeout(d time.Duration) Option {
	return func(c *Conversation) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New starts a conversation that reframes with gen. Close releases the
// worker.
func New(gen reframe.Generator, opts ...Option) *Conversation {
	c := &Conversation{
		gen:     gen,
		timeout: GenerationTimeout,
		jobs:    make(chan job, queueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.processLoop()
	return c
}

// Latest returns the most recently issued sequence number, or 0 before the
// first turn.
func (c *Conversation) Latest() uint64 {
	return c.seq.Load()
}

// Submit classifies and routes text and returns the turn immediately. If
// the turn routes to a reframe, generation is queued and cb receives the
// Outcome once it is ready, unless a newer turn has been issued by then.
// cb runs on the worker goroutine and must not block for long.
func (c *Conversation) Submit(ctx context.Context, text string, cb func(Outcome)) Turn {
	turn := c.newTurn(text)
	if !turn.Decision.ShouldReframe {
		return turn
	}

	select {
	case <-c.done:
		return turn
	default:
	}

	select {
	case c.jobs <- job{ctx: ctx, turn: turn, cb: cb}:
	default:
		if cb != nil {
			go cb(passThrough(turn, errQueueFull))
		}
	}
	return turn
}

// Respond handles text synchronously and always returns an Outcome.
// Generation still runs on the worker, so it never overlaps another turn's.
func (c *Conversation) Respond(ctx context.Context, text string) Outcome {
	turn := c.newTurn(text)
	if !turn.Decision.ShouldReframe {
		return passThrough(turn, nil)
	}

	select {
	case <-c.done:
		return passThrough(turn, errClosed)
	default:
	}

	reply := make(chan Outcome, 1)
	select {
	case c.jobs <- job{ctx: ctx, turn: turn, reply: reply}:
	default:
		return passThrough(turn, errQueueFull)
	}

	select {
	case out := <-reply:
		return out
	case <-ctx.Done():
		return passThrough(turn, ctx.Err())
	case <-c.stopped:
		return passThrough(turn, errClosed)
	}
}

// Close stops the worker after the job in progress, if any. Queued jobs
// are discarded.
func (c *Conversation) Close() {
	c.once.Do(func() { close(c.done) })
	<-c.stopped
}

func (c *Conversation) newTurn(text string) Turn {
	seq := c.seq.Add(1)
	result := distortion.Classify(text)
	return Turn{
		Seq:      seq,
		Text:     text,
		Result:   result,
		Decision: router.Route(result),
	}
}

func (c *Conversation) processLoop() {
	defer close(c.stopped)
	for {
		select {
		case <-c.done:
			return
		case j := <-c.jobs:
			c.process(j)
		}
	}
}

func (c *Conversation) process(j job) {
	if j.reply != nil {
		j.reply <- c.generate(j.ctx, j.turn)
		return
	}

	// Superseded before it started: skip the work entirely.
	if j.turn.Seq != c.seq.Load() {
		return
	}
	out := c.generate(j.ctx, j.turn)
	if j.turn.Seq != c.seq.Load() {
		return
	}
	if j.cb != nil {
		j.cb(out)
	}
}

// generate runs the generator under the timeout. Any failure, including a
// generator that ignores its context or panics, becomes a pass-through.
func (c *Conversation) generate(ctx context.Context, turn Turn) Outcome {
	primary, ok := reframe.Primary(turn.Result)
	if !ok {
		return passThrough(turn, fmt.Errorf("no distortion to reframe"))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type result struct {
		resp reframe.Response
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		resp, err := c.gen.Generate(ctx, turn.Text, primary)
		ch <- result{resp: resp, err: err}
	}()

	var res result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	case <-c.done:
		res.err = errClosed
	}

	if res.err == nil && (res.resp.Message == "" || res.resp.FollowUpQuestion == "") {
		res.err = errEmptyResponse
	}
	if res.err != nil {
		return passThrough(turn, res.err)
	}

	resp := res.resp
	return Outcome{
		Turn:     turn,
		Reframed: true,
		Response: &resp,
		Reply:    reframe.Format(resp),
	}
}

func passThrough(turn Turn, err error) Outcome {
	return Outcome{Turn: turn, Err: err}
}
