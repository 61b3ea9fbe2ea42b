package command

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Middleware wraps a command (logging, recovery, metrics). The wrapped
// value remains a Command.
type Middleware func(Command) Command

// Apply wraps c with each middleware in turn; later middlewares end up
// outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}

// Unwrappable is implemented by wrapped commands so adapters can reach the
// underlying command, e.g. to type-assert to SlashProvider.
type Unwrappable interface {
	Command
	Unwrap() Command
}

// Wrapped swaps a command's Run while delegating identity to the inner
// command. The inner command stays reachable via Unwrap.
type Wrapped struct {
	Inner   Command
	RunFunc func(ctx context.Context, inv *Invocation) error
}

// Name delegates to the inner command.
func (w *Wrapped) Name() string { return w.Inner.Name() }

// Description delegates to the inner command.
func (w *Wrapped) Description() string { return w.Inner.Description() }

// Run runs the wrapper's RunFunc, falling back to the inner command.
func (w *Wrapped) Run(ctx context.Context, inv *Invocation) error {
	if w.RunFunc != nil {
		return w.RunFunc(ctx, inv)
	}
	return w.Inner.Run(ctx, inv)
}

// Unwrap returns the inner command.
func (w *Wrapped) Unwrap() Command { return w.Inner }

// Wrap returns a command that runs run instead of c.Run. Use this in
// middleware; the returned command implements Unwrappable.
func Wrap(c Command, run func(ctx context.Context, inv *Invocation) error) Command {
	return &Wrapped{Inner: c, RunFunc: run}
}

// Root unwraps a command until the underlying command is not Unwrappable.
func Root(c Command) Command {
	for {
		u, ok := c.(Unwrappable)
		if !ok {
			return c
		}
		c = u.Unwrap()
	}
}

// WithLogging wraps a command to log every execution and its outcome.
func WithLogging() Middleware {
	return func(c Command) Command {
		return Wrap(c, func(ctx context.Context, inv *Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)

			evt := log.Info()
			if err != nil {
				evt = log.Error().Err(err)
			}
			evt = evt.Str("command", c.Name()).Dur("took", time.Since(start))
			if inv != nil {
				if sc, ok := inv.Data.(*SlashContext); ok && sc.Event != nil {
					evt = evt.Str("guild", sc.Event.GuildID)
					if sc.Event.Member != nil && sc.Event.Member.User != nil {
						evt = evt.Str("user", sc.Event.Member.User.Username)
					}
				}
			}
			evt.Msg("Command executed")
			return err
		})
	}
}
