package game

type EventType string

const (
	EventOrderSpawned     EventType = "order_spawned"
	EventOrderExpired     EventType = "order_expired"
	EventOrderAccepted    EventType = "order_accepted"
	EventOrderCompleted   EventType = "order_completed"
	EventMutationStarted  EventType = "mutation_started"
	EventMutationFinished EventType = "mutation_finished"
	EventResearchStarted  EventType = "research_started"
	EventResearchFinished EventType = "research_finished"
	EventGameSaved        EventType = "game_saved"
)

// Event is one simulation occurrence, broadcast to presentation clients.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}
