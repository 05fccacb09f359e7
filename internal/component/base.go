package component

// Base — база игрока в конце пути.
type Base struct {
	Health    int
	MaxHealth int
	Position  Position
}
