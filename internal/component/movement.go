// component/movement.go
package component

import "ribbon-defense/pkg/vec"

// Position — компонент позиции
type Position = vec.Vec2
