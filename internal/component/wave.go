package component

import "math"

// NeverSpawned is the LastSpawnTime of a fresh spawner: the first enemy
// appears on the first tick.
var NeverSpawned = math.Inf(-1)

// Spawner хранит состояние генератора врагов.
// SpawnInterval и EnemySpeed перезаписываются системой сложности каждый тик.
type Spawner struct {
	SpawnInterval float64
	LastSpawnTime float64
	EnemyHealth   int
	EnemySpeed    float64
}
