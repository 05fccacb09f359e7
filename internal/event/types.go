// internal/event/types.go
package event

import "ribbon-defense/internal/types"

const (
	EnemySpawned      EventType = "EnemySpawned"
	EnemyDestroyed    EventType = "EnemyDestroyed" // убит снарядом, +1 к счёту
	EnemyLeaked       EventType = "EnemyLeaked"    // дошёл до базы
	BaseDamaged       EventType = "BaseDamaged"
	BaseDepleted      EventType = "BaseDepleted" // здоровье базы стало 0, конец игры
	ShotFired         EventType = "ShotFired"
	ProjectileHit     EventType = "ProjectileHit"
	ProjectileExpired EventType = "ProjectileExpired" // цель пропала до попадания
	TowerPlaced       EventType = "TowerPlaced"
	TowerRejected     EventType = "TowerRejected"
	DifficultyChanged EventType = "DifficultyChanged"
	GameReset         EventType = "GameReset"
)

// EnemyData сопровождает EnemySpawned, EnemyDestroyed и EnemyLeaked.
type EnemyData struct {
	Handle types.Handle
	X, Y   float64
	Damage int // для EnemyLeaked: урон базе
}

// BaseData сопровождает BaseDamaged и BaseDepleted.
type BaseData struct {
	Amount    int
	Health    int
	MaxHealth int
}

// ShotData сопровождает ShotFired, ProjectileHit и ProjectileExpired.
type ShotData struct {
	TowerID      types.EntityID
	ProjectileID types.EntityID
	Target       types.Handle
	Damage       int
}

// TowerData сопровождает TowerPlaced и TowerRejected.
type TowerData struct {
	ID     types.EntityID
	Type   string
	X, Y   float64
	Reason string
}

// DifficultyData сопровождает DifficultyChanged.
type DifficultyData struct {
	From, To      string
	SpawnInterval float64
	EnemySpeed    float64
}

// ResetData сопровождает GameReset.
type ResetData struct {
	EpisodeID string
	MaxHealth int
}
