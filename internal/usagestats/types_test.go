package usagestats

import "testing"

func TestVisiblePackages_SkipsNone(t *testing.T) {
	doc := &Document{
		Packages: []PackageSummary{
			{Package: "b.app", LastEvent: EventMoveToBackground},
			{Package: "hidden.app", LastEvent: EventNone},
			{Package: "a.app", LastEvent: EventType(42)},
			{Package: "c.app", LastEvent: EventKeyguardHidden},
		},
	}

	got := doc.VisiblePackages()
	want := []string{"b.app", "a.app", "c.app"}
	if len(got) != len(want) {
		t.Fatalf("VisiblePackages() returned %d packages, want %d: %+v", len(got), len(want), got)
	}
	for i, name := range want {
		if got[i].Package != name {
			t.Errorf("VisiblePackages()[%d] = %q, want %q", i, got[i].Package, name)
		}
	}
}

func TestVisiblePackages_Empty(t *testing.T) {
	doc := &Document{}
	if got := doc.VisiblePackages(); len(got) != 0 {
		t.Errorf("VisiblePackages() = %v, want empty", got)
	}
}

func TestAbsolute(t *testing.T) {
	doc := &Document{Base: 1000000000000}
	if got := doc.Absolute(5000); got != 1000000005000 {
		t.Errorf("Absolute(5000) = %d, want 1000000005000", got)
	}
	if got := doc.Absolute(-2500); got != 999999997500 {
		t.Errorf("Absolute(-2500) = %d, want 999999997500", got)
	}
}

func TestRecordLabel(t *testing.T) {
	tests := []struct {
		name string
		code EventType
		text string
		want string
	}{
		{name: "known code ignores text", code: EventMoveToForeground, text: "01", want: EventMoveToForeground.Label()},
		{name: "unknown code keeps text", code: 42, text: "042", want: "042"},
		{name: "unknown code without text", code: 42, want: "42"},
		{name: "none", code: EventNone, text: "0", want: NoneLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PackageSummary{LastEvent: tt.code, LastEventText: tt.text}
			if got := p.Label(); got != tt.want {
				t.Errorf("PackageSummary.Label() = %q, want %q", got, tt.want)
			}
			e := TimelineEvent{Type: tt.code, TypeText: tt.text}
			if got := e.Label(); got != tt.want {
				t.Errorf("TimelineEvent.Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
