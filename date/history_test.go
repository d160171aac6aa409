package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History)
	d1, v1 := New(2025, 07, 01), 101.0
	d2, v2 := New(2024, 07, 01), 99.0

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendOverwrite(t *testing.T) {
	on := New(2025, 7, 1)
	h := new(History).Append(on, 100).Append(on, 105)

	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 105 {
		t.Errorf("Get() = %v, %v want 105, true", v, ok)
	}
}

func TestFirstLatest(t *testing.T) {
	h := new(History)
	if d, v := h.First(); !d.IsZero() || v != 0 {
		t.Errorf("First() on empty = %v, %v want zero values", d, v)
	}
	if d, v := h.Latest(); !d.IsZero() || v != 0 {
		t.Errorf("Latest() on empty = %v, %v want zero values", d, v)
	}

	h.Append(New(2025, 7, 2), 102)
	h.Append(New(2025, 7, 1), 101)
	h.Append(New(2025, 7, 3), 103)

	if d, v := h.First(); d != New(2025, 7, 1) || v != 101 {
		t.Errorf("First() = %v, %v want 2025-07-01, 101", d, v)
	}
	if d, v := h.Latest(); d != New(2025, 7, 3) || v != 103 {
		t.Errorf("Latest() = %v, %v want 2025-07-03, 103", d, v)
	}
}

func TestGet(t *testing.T) {
	h := new(History).Append(New(2025, 7, 1), 101)
	if _, ok := h.Get(New(2025, 7, 2)); ok {
		t.Errorf("Get(missing) = _, true want false")
	}
	if v, ok := h.Get(New(2025, 7, 1)); !ok || v != 101 {
		t.Errorf("Get() = %v, %v want 101, true", v, ok)
	}
}
