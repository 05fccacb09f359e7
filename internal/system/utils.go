// internal/system/utils.go
package system

import (
	"io"
	"log"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/types"
)

// ApplyDamage наносит урон врагу. EnemyDestroyed публикуется только на
// переходе здоровья через ноль: урон по уже мёртвому врагу игнорируется,
// поэтому одно уничтожение никогда не засчитывается дважды.
func ApplyDamage(enemy *component.Enemy, h types.Handle, damage int, q *event.Queue) bool {
	if enemy.Dead() {
		return false
	}
	enemy.Health -= damage
	if !enemy.Dead() {
		return false
	}
	q.Push(event.EnemyDestroyed, event.EnemyData{
		Handle: h,
		X:      enemy.Position.X,
		Y:      enemy.Position.Y,
	})
	return true
}

func discardIfNil(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return logger
}
