package application

import (
	"context"
	"sync"
	"time"

	"confessd/feed/domain"

	"github.com/rs/zerolog/log"
)

const dispatchTimeout = 90 * time.Second

// Dispatcher fires the reply-generation pipeline for freshly created
// posts. Every trigger is a detached, at-most-once attempt: no retry,
// no result delivered to the caller, failures observable only in the
// log. Dispatches use the dispatcher's lifecycle context, not the
// request context, so they outlive the originating request.
type Dispatcher struct {
	trigger domain.ReplyTrigger

	// Lifecycle context - cancelled when Close() is called
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
}

func NewDispatcher(trigger domain.ReplyTrigger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		trigger: trigger,
		ctx:     ctx,
		cancel:  cancel,
		wg:      &sync.WaitGroup{},
	}
}

// Trigger starts a detached reply attempt for the post. It returns
// immediately; the attempt's outcome never reaches the caller.
func (d *Dispatcher) Trigger(postID, body string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(d.ctx, dispatchTimeout)
		defer cancel()

		if err := d.trigger.TriggerReply(ctx, postID, body); err != nil {
			log.Error().Err(err).Str("postID", postID).Msg("Failed to trigger reply bot")
		}
	}()
}

// Close cancels the lifecycle context and waits for in-flight
// dispatches to finish.
func (d *Dispatcher) Close() error {
	d.cancel()
	d.wg.Wait()

	return nil
}
