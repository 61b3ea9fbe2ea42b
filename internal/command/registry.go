package command

import (
	"regexp"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Discord accepts lowercase command names of 2 to 32 characters.
var nameRe = regexp.MustCompile(`^[a-z][a-z0-9-]{1,31}$`)

// Registry stores commands by name. It performs no dispatch; the bot, the
// deploy tool and the README generator each walk it their own way.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. Invalid registrations are logged and skipped so
// one bad entry never takes the rest of the catalog down.
func (r *Registry) Register(c Command) {
	if c == nil {
		log.Warn().Msg("Skipping command registration: nil command")
		return
	}
	name := c.Name()
	if !nameRe.MatchString(name) {
		log.Warn().Str("command", name).Msg("Skipping command registration: invalid name")
		return
	}
	if _, exists := r.commands[name]; exists {
		log.Warn().Str("command", name).Msg("Skipping command registration: duplicate name")
		return
	}
	r.commands[name] = c
}

// Get returns the command with the given name, or nil.
func (r *Registry) Get(name string) Command {
	return r.commands[name]
}

// All returns the registered commands sorted by name.
func (r *Registry) All() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Len reports how many commands are registered.
func (r *Registry) Len() int { return len(r.commands) }

// Deployable returns the slash schema of every command that provides one,
// sorted by name. Schema-less commands are logged and left out.
func (r *Registry) Deployable() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(r.commands))
	for _, c := range r.All() {
		def := SlashDefinitionOf(c)
		if def == nil {
			log.Warn().Str("command", c.Name()).Msg("Skipping deploy: command has no slash definition")
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

// SlashDefinitionOf extracts the slash schema from c, unwrapping middleware
// layers first. Returns nil when the root command is not a SlashProvider or
// publishes no definition.
func SlashDefinitionOf(c Command) *discordgo.ApplicationCommand {
	slash, ok := Root(c).(SlashProvider)
	if !ok {
		return nil
	}
	def := slash.SlashDefinition()
	if def == nil {
		return nil
	}
	if def.Type == 0 {
		def.Type = discordgo.ChatApplicationCommand
	}
	return def
}
