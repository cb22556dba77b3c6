package monitor

import (
	"regexp"
	"strings"
	"testing"

	"github.com/coursewatch/coursewatch/internal/types"
)

var sgrPattern = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

// stripANSI removes escape sequences so layout can be checked on its own.
func stripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

func TestFormatRowLayout(t *testing.T) {
	f := NewRowFormatter()
	line := f.FormatRow(types.Delta{
		Key:       "CS2006301",
		Name:      "計算機程式設計",
		Count:     "50",
		Prev:      "48",
		Capacity:  "50",
		Direction: types.DirectionUp,
		Room:      "TR-212",
	})

	want := padToWidth("CS2006301 | 計算機程式設計", CourseColWidth) +
		padToWidth("+ 50 / 50", SeatColWidth) +
		"| TR-212"
	if got := stripANSI(line); got != want {
		t.Errorf("stripped FormatRow() = %q, want %q", got, want)
	}
}

func TestFormatRowDirectionColors(t *testing.T) {
	f := NewRowFormatter()

	delta := func(count string, dir types.Direction) types.Delta {
		return types.Delta{
			Key: "CS201", Name: "計算機程式設計",
			Count: count, Prev: "48", Capacity: "50",
			Direction: dir, Room: "TR-212",
		}
	}

	tests := []struct {
		name        string
		delta       types.Delta
		wantSegment string
		wantAbsent  string
		wantSeats   string // plain layout of the seat column
	}{
		{
			"increase is red with plus sign",
			delta("50", types.DirectionUp),
			f.up.Render("50"),
			f.down.Render("50"),
			"+ 50 / 50",
		},
		{
			"decrease is green",
			delta("47", types.DirectionDown),
			f.down.Render("47"),
			f.up.Render("47"),
			"- 47 / 50",
		},
		{
			"not comparable stays seat colored",
			delta("48", types.DirectionFlat),
			f.seats.Render("48"),
			f.up.Render("48"),
			"- 48 / 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := f.FormatRow(tt.delta)
			if !strings.Contains(line, tt.wantSegment) {
				t.Errorf("FormatRow() = %q, missing segment %q", line, tt.wantSegment)
			}
			if strings.Contains(line, tt.wantAbsent) {
				t.Errorf("FormatRow() = %q, contains unwanted segment %q", line, tt.wantAbsent)
			}
			wantCol2 := padToWidth(tt.wantSeats, SeatColWidth)
			if got := stripANSI(line); !strings.Contains(got, wantCol2) {
				t.Errorf("stripped FormatRow() = %q, missing seat column %q", got, wantCol2)
			}
		})
	}
}

func TestFormatRowMissingCount(t *testing.T) {
	f := NewRowFormatter()
	line := f.FormatRow(types.Delta{
		Key: "CS201", Name: "計算機程式設計",
		Count: "-", Prev: "48", Capacity: "40",
		Direction: types.DirectionFlat, Room: "TR-212",
	})

	wantCol2 := padToWidth("- - / 40", SeatColWidth)
	if got := stripANSI(line); !strings.Contains(got, wantCol2) {
		t.Errorf("stripped FormatRow() = %q, missing seat column %q", got, wantCol2)
	}
	for _, bad := range []string{f.up.Render("-"), f.down.Render("-")} {
		if strings.Contains(line, bad) {
			t.Errorf("FormatRow() = %q, placeholder count picked a direction color %q", line, bad)
		}
	}
}

func TestFormatRowCountNotFindable(t *testing.T) {
	f := NewRowFormatter()

	// A count wider than the seat column is truncated out of the padded
	// text, so the recoloring has nothing to latch onto and the whole
	// column stays uniform.
	count := "123456789012345678"
	line := f.FormatRow(types.Delta{
		Key: "CS201", Name: "x",
		Count: count, Prev: "48", Capacity: "-",
		Direction: types.DirectionUp, Room: "-",
	})

	wantCol2 := padToWidth("+ "+count+" / -", SeatColWidth)
	if !strings.Contains(line, f.seats.Render(wantCol2)) {
		t.Errorf("FormatRow() = %q, want uniform seat column %q", line, f.seats.Render(wantCol2))
	}
	if strings.Contains(line, f.up.Render(count)) {
		t.Errorf("FormatRow() = %q, recolored a count that is not visible", line)
	}
}

func TestFormatTitle(t *testing.T) {
	f := NewRowFormatter()
	got := f.FormatTitle("加退選即時通")

	if stripANSI(got) != "加退選即時通" {
		t.Errorf("stripped FormatTitle() = %q, want %q", stripANSI(got), "加退選即時通")
	}
	if got == "加退選即時通" {
		t.Error("FormatTitle() carries no color codes")
	}
}
