// internal/event/types.go
package event

import (
	"jungle-defense/internal/types"
	"jungle-defense/pkg/grid"
)

const (
	AttackerKilled  EventType = "AttackerKilled"  // Data: AttackerKilledData
	DefenderPlaced  EventType = "DefenderPlaced"  // Data: DefenderData
	DefenderRemoved EventType = "DefenderRemoved" // Data: DefenderData
	WaveAdvanced    EventType = "WaveAdvanced"    // Data: WaveData
	GameOver        EventType = "GameOver"        // Data: nil
)

type AttackerKilledData struct {
	ID      types.EntityID
	Kind    string
	Score   int
	Bananas int
}

type DefenderData struct {
	ID   types.EntityID
	Kind string
	Cell grid.Cell
}

type WaveData struct {
	Waves  int
	Chance int
}
