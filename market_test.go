package tracker

import (
	"testing"

	"github.com/etnz/tracker/date"
)

func TestMarketData_Dates(t *testing.T) {
	m := NewMarketData()
	if got := m.Dates(); len(got) != 0 {
		t.Fatalf("Dates() on empty market = %v, want none", got)
	}

	aaa := new(date.History)
	aaa.Append(date.New(2025, 7, 1), 100)
	aaa.Append(date.New(2025, 7, 3), 102)
	bbb := new(date.History)
	bbb.Append(date.New(2025, 7, 2), 50)
	bbb.Append(date.New(2025, 7, 3), 55)
	m.Add("AAA", aaa)
	m.Add("BBB", bbb)

	want := []date.Date{
		date.New(2025, 7, 1),
		date.New(2025, 7, 2),
		date.New(2025, 7, 3),
	}
	got := m.Dates()
	if len(got) != len(want) {
		t.Fatalf("Dates() = %v, want %v", got, want)
	}
	for i := range want {
		// Shared dates appear once, all dates in order.
		if got[i].Compare(want[i]) != 0 {
			t.Errorf("Dates()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMarketData_AddReplaces(t *testing.T) {
	m := NewMarketData()
	first := new(date.History)
	first.Append(date.New(2025, 7, 1), 100)
	m.Add("AAA", first)

	second := new(date.History)
	second.Append(date.New(2025, 7, 2), 200)
	m.Add("AAA", second)

	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (Add replaces, not appends)", m.Len())
	}
	if _, v := m.Get("AAA").Latest(); v != 200 {
		t.Errorf("Get(AAA) latest = %v, want the replacing series", v)
	}
}
