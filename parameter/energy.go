package parameter

// Sunlight energy pool
const (
	// EnergyMax is the pool capacity
	EnergyMax = 100.0

	// EnergyInitial is the level at game start
	EnergyInitial = 100.0

	// EnergyRegenRate is passive regen per second while in sunlight
	EnergyRegenRate = 5.0

	// EnergyDebugDrain is the amount removed by the demo drain key
	EnergyDebugDrain = 20.0
)
