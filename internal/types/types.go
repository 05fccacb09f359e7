// internal/types/types.go
package types

// EntityID — идентификатор сущности (башни, снаряда).
type EntityID uint32

// Handle указывает на слот в реестре врагов. Generation увеличивается
// при каждом освобождении слота, поэтому старый Handle не может
// случайно указать на нового врага, занявшего тот же слот.
type Handle struct {
	Index      uint32
	Generation uint32
}

// NilHandle never resolves.
var NilHandle = Handle{}

func (h Handle) IsNil() bool {
	return h.Generation == 0
}
