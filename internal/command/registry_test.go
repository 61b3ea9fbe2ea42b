package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slashFake provides a schema; bareFake does not.
type slashFake struct {
	name string
	def  *discordgo.ApplicationCommand
	err  error
}

func (f *slashFake) Name() string        { return f.name }
func (f *slashFake) Description() string { return "fake " + f.name }
func (f *slashFake) Run(ctx context.Context, inv *Invocation) error {
	return f.err
}
func (f *slashFake) SlashDefinition() *discordgo.ApplicationCommand { return f.def }

type bareFake struct {
	name string
}

func (f *bareFake) Name() string                                   { return f.name }
func (f *bareFake) Description() string                            { return "bare " + f.name }
func (f *bareFake) Run(ctx context.Context, inv *Invocation) error { return nil }

func def(name string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: name, Description: "d"}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&slashFake{name: "track"})
	r.Register(&slashFake{name: "flight"})

	assert.Equal(t, 2, r.Len())
	require.NotNil(t, r.Get("flight"))
	assert.Equal(t, "flight", r.Get("flight").Name())
	assert.Nil(t, r.Get("missing"))

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "flight", all[0].Name())
	assert.Equal(t, "track", all[1].Name())
}

func TestRegistrySkipsInvalidRegistrations(t *testing.T) {
	r := NewRegistry()

	r.Register(nil)
	r.Register(&slashFake{name: ""})
	r.Register(&slashFake{name: "Flight"})
	r.Register(&slashFake{name: "has space"})
	r.Register(&slashFake{name: "x"})
	r.Register(&slashFake{name: "9flight"})
	r.Register(&slashFake{name: strings.Repeat("a", 33)})

	assert.Equal(t, 0, r.Len())

	r.Register(&slashFake{name: "flight"})
	r.Register(&slashFake{name: "flight"}) // duplicate
	assert.Equal(t, 1, r.Len())

	r.Register(&slashFake{name: strings.Repeat("a", 32)}) // max length is fine
	assert.Equal(t, 2, r.Len())
}

func TestRegistryDeployable(t *testing.T) {
	r := NewRegistry()
	r.Register(&slashFake{name: "flight", def: def("flight")})
	r.Register(&slashFake{name: "track", def: def("track")})
	r.Register(&slashFake{name: "broken"})   // nil definition
	r.Register(&bareFake{name: "invisible"}) // no SlashProvider at all

	defs := r.Deployable()

	require.Len(t, defs, 2)
	assert.Equal(t, "flight", defs[0].Name)
	assert.Equal(t, "track", defs[1].Name)
	for _, d := range defs {
		assert.Equal(t, discordgo.ChatApplicationCommand, d.Type)
	}
}

func TestSlashDefinitionOfUnwrapsMiddleware(t *testing.T) {
	inner := &slashFake{name: "flight", def: def("flight")}
	wrapped := Apply(inner, WithLogging(), WithLogging())

	got := SlashDefinitionOf(wrapped)

	require.NotNil(t, got)
	assert.Equal(t, "flight", got.Name)
	assert.Same(t, inner, Root(wrapped))
}

func TestApplyOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(c Command) Command {
			return Wrap(c, func(ctx context.Context, inv *Invocation) error {
				order = append(order, name)
				return c.Run(ctx, inv)
			})
		}
	}

	c := Apply(&slashFake{name: "flight"}, tag("inner"), tag("outer"))
	require.NoError(t, c.Run(context.Background(), &Invocation{}))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, "flight", c.Name())
	assert.Equal(t, "fake flight", c.Description())
}

func TestWithLoggingPassesErrorThrough(t *testing.T) {
	boom := errors.New("boom")
	c := Apply(&slashFake{name: "flight", err: boom}, WithLogging())

	err := c.Run(context.Background(), &Invocation{})

	assert.ErrorIs(t, err, boom)
}
