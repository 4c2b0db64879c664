package ecs

import (
	"testing"

	"github.com/milk9111/blockfall/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := w.CreateEntity()
				if !e.Valid() {
					t.Fatalf("CreateEntity returned invalid handle")
				}
				if !w.IsAlive(e) {
					t.Fatalf("fresh entity should be alive")
				}
				ents = append(ents, e)
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("double destroy should return false")
				}
			}
		})
	}
}

func TestStaleHandleDoesNotResolve(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	if err := Add(w, e1, h, intPtr(7)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	w.DestroyEntity(e1)

	// Reuses e1's slot with a bumped generation.
	e2 := w.CreateEntity()
	if e2 == e1 {
		t.Fatalf("recycled entity should differ from stale handle")
	}
	if Has(w, e1, h) {
		t.Fatalf("stale handle should not see components")
	}
	if _, ok := Get(w, e2, h); ok {
		t.Fatalf("recycled entity should start without components")
	}
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, hInt, intPtr(1)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e2, hInt, intPtr(2)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e2, hStr, strPtr("b")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e3, hStr, strPtr("c")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := len(w.Query(hInt.Kind())); got != 2 {
		t.Fatalf("Query(int) = %d entities, want 2", got)
	}

	both := w.Query(hInt.Kind(), hStr.Kind())
	if len(both) != 1 || both[0] != e2 {
		t.Fatalf("Query(int, string) = %v, want [%v]", both, e2)
	}

	v, ok := Get(w, e2, hInt)
	if !ok || *v != 2 {
		t.Fatalf("Get(e2) = %v, %v", v, ok)
	}

	// Mutation through the pointer sticks.
	*v = 20
	v2, _ := Get(w, e2, hInt)
	if *v2 != 20 {
		t.Fatalf("component mutation lost, got %d", *v2)
	}

	if !Remove(w, e2, hInt) {
		t.Fatalf("Remove should report success")
	}
	if Has(w, e2, hInt) {
		t.Fatalf("component still present after Remove")
	}
	if got := len(w.Query(hInt.Kind(), hStr.Kind())); got != 0 {
		t.Fatalf("Query after remove = %d entities, want 0", got)
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := w.CreateEntity()
	if err := Add(w, e, h, nil); err != component.ErrNilComponent {
		t.Fatalf("Add(nil) = %v, want ErrNilComponent", err)
	}

	w.DestroyEntity(e)
	if err := Add(w, e, h, intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("Add(dead) = %v, want ErrEntityNotAlive", err)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := w.CreateEntity()
	if err := Add(w, e, h, intPtr(5)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	w.DestroyEntity(e)

	if got := w.Store(h.Kind()).Len(); got != 0 {
		t.Fatalf("store still holds %d components after destroy", got)
	}
}

func TestForEachVisitsAll(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	want := map[Entity]int{}
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, h, intPtr(i)); err != nil {
			t.Fatalf("Add: %v", err)
		}
		want[e] = i
	}

	got := map[Entity]int{}
	ForEach(w, h, func(e Entity, v *int) {
		got[e] = *v
	})

	if len(got) != len(want) {
		t.Fatalf("ForEach visited %d entities, want %d", len(got), len(want))
	}
	for e, v := range want {
		if got[e] != v {
			t.Fatalf("ForEach value for %v = %d, want %d", e, got[e], v)
		}
	}
}

func TestEventQueueFrameScope(t *testing.T) {
	w := NewWorld()

	w.Events().Push(Event{Type: EventPieceSettled})
	w.Events().Push(Event{Type: EventRowsCleared, Data: RowsClearedData{Rows: []int{0}, Blocks: 10}})

	if got := len(w.Events().Items()); got != 2 {
		t.Fatalf("Items = %d events, want 2", got)
	}

	// Update flushes the queue even with no systems registered.
	w.Update()
	if got := len(w.Events().Items()); got != 0 {
		t.Fatalf("events survived the frame: %d", got)
	}
}
