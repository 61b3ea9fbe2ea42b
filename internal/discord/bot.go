package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"flightdeck/internal/command"
	"flightdeck/internal/config"
	"flightdeck/internal/reply"
)

// Bot is the Discord front end: one session dispatching slash interactions
// into the command registry. Command publication is owned by the deploy
// tool; the bot never touches Discord's command catalog.
type Bot struct {
	dg  *discordgo.Session
	cfg *config.Config
	reg *command.Registry
	ctx context.Context
}

// StartBot runs the bot until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, reg *command.Registry) error {
	b := &Bot{cfg: cfg, reg: reg, ctx: ctx}
	if err := b.run(ctx); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	// Slash interactions need no privileged intents.
	dg.Identify.Intents = discordgo.IntentsGuilds

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Info().Msg("❎ Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().
		Int("commands", b.reg.Len()).
		Msgf("✅ Discord bot %v is running", r.User.Username)
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	c := b.reg.Get(name)
	if c == nil {
		log.Warn().Str("command", name).Msg("Unknown command")
		return
	}

	b.safeRun(c, s, i)
}

// safeRun executes one command and guarantees the user sees something even
// when the command errors or panics. Faults never cross one interaction.
func (b *Bot) safeRun(c command.Command, s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("command", c.Name()).Msg("Command panicked")
			b.reportFault(s, i, fmt.Sprintf("The /%s command crashed. Please try again.", c.Name()))
		}
	}()

	inv := &command.Invocation{Data: &command.SlashContext{Session: s, Event: i}}
	if err := c.Run(b.ctx, inv); err != nil {
		log.Error().Err(err).Str("command", c.Name()).Msg("Command failed")
		b.reportFault(s, i, fmt.Sprintf("The /%s command failed: %v", c.Name(), err))
	}
}

// reportFault tries a fresh interaction response first; when the command
// already acknowledged the interaction, the follow-up channel still works.
func (b *Bot) reportFault(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	embed := reply.ErrorEmbed(msg)
	if err := RespondEmbedEphemeral(s, i, embed); err != nil {
		if err := FollowupEmbedEphemeral(s, i, embed); err != nil {
			log.Error().Err(err).Msg("Failed to deliver error reply")
		}
	}
}
