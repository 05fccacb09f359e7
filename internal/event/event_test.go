package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatcherFlushPreservesOrder(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, EnemyDestroyed, BaseDamaged, BaseDepleted)

	var q Queue
	q.Push(BaseDamaged, BaseData{Amount: 10})
	q.Push(ShotFired, nil) // no subscriber
	q.Push(EnemyDestroyed, EnemyData{})
	q.Push(BaseDepleted, BaseData{})
	d.Flush(&q)

	want := []EventType{BaseDamaged, EnemyDestroyed, BaseDepleted}
	if len(r.got) != len(want) {
		t.Fatalf("got %v, want %v", r.got, want)
	}
	for i := range want {
		if r.got[i] != want[i] {
			t.Fatalf("got %v, want %v", r.got, want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after Flush: %d", q.Len())
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(GameReset, r)
	d.Unsubscribe(GameReset, r)
	d.Dispatch(Event{Type: GameReset})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener received %v", r.got)
	}
}

func TestQueueCountAndGrowthDuringIteration(t *testing.T) {
	var q Queue
	q.Push(EnemyLeaked, nil)
	for i := 0; i < q.Len(); i++ {
		if q.At(i).Type == EnemyLeaked {
			q.Push(BaseDamaged, nil)
		}
	}
	if q.Len() != 2 || q.Count(BaseDamaged) != 1 {
		t.Errorf("Len=%d Count(BaseDamaged)=%d", q.Len(), q.Count(BaseDamaged))
	}
}
