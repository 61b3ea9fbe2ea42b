// Package deploy publishes the command catalog to Discord. Publication
// replaces the whole remote set in one call, so running it twice with the
// same catalog leaves Discord unchanged.
package deploy

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"flightdeck/internal/command"
)

// State tracks where a deploy run is in its lifecycle.
type State uint8

const (
	StateIdle State = iota
	StateLoading
	StateDiffing
	StatePublishing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDiffing:
		return "diffing"
	case StatePublishing:
		return "publishing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PublishErrorKind classifies publish failures into operator-facing modes.
type PublishErrorKind uint8

const (
	PublishAuth PublishErrorKind = iota
	PublishPermission
	PublishTargetNotFound
	PublishTransport
)

func (k PublishErrorKind) String() string {
	switch k {
	case PublishAuth:
		return "authentication rejected"
	case PublishPermission:
		return "missing permission"
	case PublishTargetNotFound:
		return "target not found"
	default:
		return "transport failure"
	}
}

// PublishError wraps the Discord error with its classified kind.
type PublishError struct {
	Kind PublishErrorKind
	Err  error
}

func (e *PublishError) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *PublishError) Unwrap() error { return e.Err }

// publisher is the single Discord call the deployer needs. Satisfied by
// *discordgo.Session.
type publisher interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Target selects where commands are published. An empty GuildID means the
// application's global catalog.
type Target struct {
	GuildID string
}

// Global reports whether the target is the global catalog.
func (t Target) Global() bool { return t.GuildID == "" }

func (t Target) String() string {
	if t.Global() {
		return "global"
	}
	return "guild " + t.GuildID
}

// Deployer publishes a registry's commands to Discord.
type Deployer struct {
	api   publisher
	appID string
	state State
}

// New returns a deployer for the given application.
func New(api publisher, appID string) *Deployer {
	return &Deployer{api: api, appID: appID}
}

// NewSession builds a REST-only session for the deploy tool. The gateway is
// never opened; bulk overwrite is a plain HTTP call.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return s, nil
}

// State reports the deployer's current lifecycle state.
func (d *Deployer) State() State { return d.state }

func (d *Deployer) setState(s State) {
	d.state = s
	log.Info().Str("state", s.String()).Msg("Deploy state")
}

// Run publishes every deployable command in reg to the target. One bulk
// overwrite makes the remote set exactly the local set; obsolete remote
// commands disappear with the same call.
func (d *Deployer) Run(reg *command.Registry, target Target) error {
	d.setState(StateLoading)
	specs := reg.Deployable()
	if len(specs) == 0 {
		d.setState(StateFailed)
		return errors.New("no deployable commands in the catalog")
	}
	log.Info().Int("commands", len(specs)).Msg("Catalog loaded")

	d.setState(StateDiffing)
	log.Info().Str("target", target.String()).Msg("Publish scope resolved")
	if target.Global() {
		log.Info().Msg("Global publication can take up to an hour to propagate")
	}

	d.setState(StatePublishing)
	if _, err := d.api.ApplicationCommandBulkOverwrite(d.appID, target.GuildID, specs); err != nil {
		d.setState(StateFailed)
		return classify(err)
	}

	d.setState(StateDone)
	log.Info().Int("commands", len(specs)).Str("target", target.String()).Msg("Command catalog published")
	return nil
}

// classify folds a Discord REST error into one of the publish error kinds.
func classify(err error) error {
	kind := PublishTransport
	var rerr *discordgo.RESTError
	if errors.As(err, &rerr) && rerr.Response != nil {
		switch rerr.Response.StatusCode {
		case http.StatusUnauthorized:
			kind = PublishAuth
		case http.StatusForbidden:
			kind = PublishPermission
		case http.StatusNotFound:
			kind = PublishTargetNotFound
		}
	}
	return &PublishError{Kind: kind, Err: err}
}
