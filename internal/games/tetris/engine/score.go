package engine

import "fmt"

// ScoreEventKind identifies what earned (or reset) points.
type ScoreEventKind int

const (
	EventLevelStart ScoreEventKind = iota
	EventSingle
	EventDouble
	EventTriple
	EventTetris
	EventMiniTSpin
	EventMiniTSpinSingle
	EventTSpin
	EventTSpinSingle
	EventTSpinDouble
	EventTSpinTriple
	EventSoftDrop
	EventHardDrop
)

var eventNames = map[ScoreEventKind]string{
	EventLevelStart:      "LevelStart",
	EventSingle:          "Single",
	EventDouble:          "Double",
	EventTriple:          "Triple",
	EventTetris:          "Tetris",
	EventMiniTSpin:       "MiniTSpin",
	EventMiniTSpinSingle: "MiniTSpinSingle",
	EventTSpin:           "TSpin",
	EventTSpinSingle:     "TSpinSingle",
	EventTSpinDouble:     "TSpinDouble",
	EventTSpinTriple:     "TSpinTriple",
	EventSoftDrop:        "SoftDrop",
	EventHardDrop:        "HardDrop",
}

func (k ScoreEventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "Unknown"
}

// basePoints are multiplied by the current level.
var basePoints = map[ScoreEventKind]uint64{
	EventSingle:          100,
	EventDouble:          300,
	EventTriple:          500,
	EventTetris:          800,
	EventMiniTSpin:       100,
	EventMiniTSpinSingle: 200,
	EventTSpin:           400,
	EventTSpinSingle:     800,
	EventTSpinDouble:     1200,
	EventTSpinTriple:     1600,
}

// ScoreEvent is one scoring occurrence. N carries the level for LevelStart and
// the cell count for drops; it is unused for line clears.
type ScoreEvent struct {
	Kind ScoreEventKind
	N    int
}

func (e ScoreEvent) String() string {
	switch e.Kind {
	case EventLevelStart, EventSoftDrop, EventHardDrop:
		return fmt.Sprintf("%s(%d)", e.Kind, e.N)
	default:
		return e.Kind.String()
	}
}

// LevelStart resets the score and sets the multiplier.
func LevelStart(level int) ScoreEvent { return ScoreEvent{Kind: EventLevelStart, N: level} }

// SoftDrop rewards n cells of soft drop.
func SoftDrop(n int) ScoreEvent { return ScoreEvent{Kind: EventSoftDrop, N: n} }

// HardDrop rewards n cells of hard drop.
func HardDrop(n int) ScoreEvent { return ScoreEvent{Kind: EventHardDrop, N: n} }

// lineClearEvents maps a cleared row count to its plain event.
var lineClearEvents = [5]ScoreEventKind{1: EventSingle, 2: EventDouble, 3: EventTriple, 4: EventTetris}

// LineClear returns the event for clearing rows lines at once.
// ok is false for counts outside 1..4.
func LineClear(rows int) (ScoreEvent, bool) {
	if rows < 1 || rows > 4 {
		return ScoreEvent{}, false
	}
	return ScoreEvent{Kind: lineClearEvents[rows]}, true
}

// Score accumulates points scaled by level.
type Score struct {
	level  int
	points uint64
}

// HandleEvent applies a scoring event.
func (s *Score) HandleEvent(e ScoreEvent) {
	switch e.Kind {
	case EventLevelStart:
		s.level = e.N
		s.points = 0
	case EventSoftDrop:
		if e.N > 0 {
			s.points += uint64(e.N)
		}
	case EventHardDrop:
		if e.N > 0 {
			s.points += 2 * uint64(e.N)
		}
	default:
		if base, ok := basePoints[e.Kind]; ok && s.level > 0 {
			s.points += base * uint64(s.level)
		}
	}
}

// Points returns the accumulated score.
func (s Score) Points() uint64 { return s.points }

// Level returns the current multiplier.
func (s Score) Level() int { return s.level }

// Formatted returns the score zero-padded to six digits.
func (s Score) Formatted() string {
	return fmt.Sprintf("%06d", s.points)
}
