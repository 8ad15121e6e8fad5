package recent

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/picker"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestRecordAndListByRole(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	start := caldate.Date{Year: 2026, Month: time.June, Day: 12}
	end := caldate.Date{Year: 2026, Month: time.June, Day: 19}
	if err := p.Record(picker.RoleStart, start, start.ISOWeek()); err != nil {
		t.Fatalf("record start: %v", err)
	}
	if err := p.Record(picker.RoleEnd, end, end.ISOWeek()); err != nil {
		t.Fatalf("record end: %v", err)
	}

	ctx := context.Background()
	starts := p.List(ctx, picker.RoleStart)
	if len(starts) != 1 {
		t.Fatalf("start selections = %d, want 1", len(starts))
	}
	if got := starts[0].Date(); !got.Equal(start) {
		t.Fatalf("stored date = %v, want %v", got, start)
	}
	if starts[0].Week != start.ISOWeek() {
		t.Fatalf("stored week = %d, want %d", starts[0].Week, start.ISOWeek())
	}
	if starts[0].Schema != CurrentSchema {
		t.Fatalf("schema = %q", starts[0].Schema)
	}

	all := p.ListAll(ctx)
	if len(all) != 2 {
		t.Fatalf("total selections = %d, want 2", len(all))
	}
}

func TestListAllSortsByRecordTime(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	for day := 10; day <= 12; day++ {
		d := caldate.Date{Year: 2026, Month: time.June, Day: day}
		if err := p.Record(picker.RoleStart, d, d.ISOWeek()); err != nil {
			t.Fatalf("record: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	all := p.ListAll(context.Background())
	if len(all) != 3 {
		t.Fatalf("selections = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].RecordedAt.Before(all[i-1].RecordedAt) {
			t.Fatalf("selections out of order at %d", i)
		}
	}
}

func TestRolesAndClear(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	d := caldate.Date{Year: 2026, Month: time.June, Day: 12}
	if err := p.Record(picker.RoleStart, d, d.ISOWeek()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := p.Record(picker.RoleEnd, d.AddDays(3), d.ISOWeek()); err != nil {
		t.Fatalf("record: %v", err)
	}

	ctx := context.Background()
	roles := p.Roles(ctx)
	if len(roles) != 2 {
		t.Fatalf("roles = %v, want two", roles)
	}

	if err := p.Clear(picker.RoleStart); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if left := p.List(ctx, picker.RoleStart); len(left) != 0 {
		t.Fatalf("cleared role still has %d selections", len(left))
	}
	if left := p.List(ctx, picker.RoleEnd); len(left) != 1 {
		t.Fatalf("other role lost records: %d", len(left))
	}
}

func TestWatchEmitsRoleChanges(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	d := caldate.Date{Year: 2026, Month: time.June, Day: 12}
	if err := p.Record(picker.RoleStart, d, d.ISOWeek()); err != nil {
		t.Fatalf("record: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventRoleChanged {
				if evt.Role != picker.RoleStart {
					t.Fatalf("expected role %q, got %q", picker.RoleStart, evt.Role)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for role change event")
		}
	}
}
