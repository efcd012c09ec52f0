package match

import "github.com/tailored-agentic-units/janken/observability"

// Match event types.
const (
	EventSessionCreate  observability.EventType = "match.session.create"
	EventRoundComplete  observability.EventType = "match.round.complete"
	EventPlayerFallback observability.EventType = "match.player.fallback"
)
