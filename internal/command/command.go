// Package command provides the transport-agnostic command core: a command
// is something with a name, a description and a Run method. How commands
// reach Discord's catalog and how they are dispatched is up to the adapters
// that walk the registry.
package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Invocation carries the adapter payload into a command. For slash commands
// Data is a *SlashContext.
type Invocation struct {
	Data interface{}
}

// Command is the universal contract: identity plus execution. Option
// parsing and replies stay inside each command.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// SlashProvider is implemented by commands that publish a slash-command
// schema. Commands without one never reach Discord's catalog.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// SlashContext is the Data payload for slash-command invocations.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
}
