package app

import (
	"testing"
	"time"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRender(2 * time.Millisecond)
	m.RecordRender(4 * time.Millisecond)
	m.RecordKey(time.Millisecond, true)
	m.RecordKey(3*time.Millisecond, false)
	m.RecordNotice()

	s := m.Snapshot()
	if s.RenderCount != 2 {
		t.Errorf("RenderCount = %d, want 2", s.RenderCount)
	}
	if s.AvgRender != 3*time.Millisecond {
		t.Errorf("AvgRender = %v, want 3ms", s.AvgRender)
	}
	if s.MaxRender != 4*time.Millisecond {
		t.Errorf("MaxRender = %v, want 4ms", s.MaxRender)
	}
	if s.KeyCount != 2 || s.KeysDropped != 1 {
		t.Errorf("keys = %d/%d dropped, want 2/1", s.KeyCount, s.KeysDropped)
	}
	if s.AvgKey != 2*time.Millisecond {
		t.Errorf("AvgKey = %v, want 2ms", s.AvgKey)
	}
	if s.DropRate() != 50 {
		t.Errorf("DropRate() = %v, want 50", s.DropRate())
	}
	if s.Notices != 1 {
		t.Errorf("Notices = %d, want 1", s.Notices)
	}
}

func TestMetrics_Empty(t *testing.T) {
	s := NewMetrics().Snapshot()
	if s.AvgRender != 0 || s.AvgKey != 0 || s.DropRate() != 0 {
		t.Errorf("empty snapshot = %+v, want zero averages", s)
	}
}
