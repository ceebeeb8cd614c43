package gesture

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // slot 0 = mouse, 1-9 = touch

// touchReader is the slice of the ebiten input API the source needs.
type touchReader interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	CursorPosition() (int, int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
}

type ebitenReader struct{}

func (ebitenReader) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}
func (ebitenReader) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }
func (ebitenReader) CursorPosition() (int, int)                   { return ebiten.CursorPosition() }
func (ebitenReader) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

// EbitenSource turns ebiten's polled touch state into Snapshots. Call Poll
// once per tick from Game.Update and submit every returned snapshot in order.
// Ebiten reports no pressure, so every pointer has pressure 1.
type EbitenSource struct {
	// MouseAsTouch treats the left mouse button as pointer slot 0, which
	// makes single-finger gestures testable on desktop.
	MouseAsTouch bool
	// OffsetX and OffsetY are the view's position on screen, applied as the
	// raw offset of every snapshot.
	OffsetX, OffsetY float64

	reader touchReader
	clock  func() int64

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	// order lists the down slots in the order they went down; a slot's
	// position in order is its pointer index.
	order []int
	pos   [maxPointers]Vec2
	out   []Snapshot
}

// NewEbitenSource creates a source reading ebiten's global input state.
func NewEbitenSource() *EbitenSource {
	start := time.Now()
	return &EbitenSource{
		reader: ebitenReader{},
		clock:  func() int64 { return time.Since(start).Milliseconds() },
	}
}

// Poll reads the current touch state and returns the snapshots describing
// what changed since the previous call: moves first, then lifts, then new
// placements. The returned slice is reused by the next call.
func (s *EbitenSource) Poll() []Snapshot {
	s.out = s.out[:0]
	now := s.clock()

	var active [maxPointers]bool
	var cur [maxPointers]Vec2

	if s.MouseAsTouch && s.reader.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := s.reader.CursorPosition()
		active[0] = true
		cur[0] = Vec2{float64(mx), float64(my)}
	}

	touchIDs := s.reader.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			Logger().Warn("gesture: touch dropped, all pointer slots in use", "touch", int(tid))
			continue
		}
		active[slot] = true
		tx, ty := s.reader.TouchPosition(tid)
		cur[slot] = Vec2{float64(tx), float64(ty)}
	}

	// Moves of pointers that are still down.
	moved := false
	for _, slot := range s.order {
		if active[slot] && cur[slot] != s.pos[slot] {
			s.pos[slot] = cur[slot]
			moved = true
		}
	}
	if moved {
		s.emit(ActionMove, 0, now)
	}

	// Lifts, reported with the lifting pointer still present.
	for i := len(s.order) - 1; i >= 0; i-- {
		slot := s.order[i]
		if active[slot] {
			continue
		}
		action := ActionPointerUp
		if len(s.order) == 1 {
			action = ActionUp
		}
		s.emit(action, i, now)
		s.order = append(s.order[:i], s.order[i+1:]...)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}

	// New placements.
	for slot := 0; slot < maxPointers; slot++ {
		if !active[slot] || s.isDown(slot) {
			continue
		}
		s.order = append(s.order, slot)
		s.pos[slot] = cur[slot]
		action := ActionPointerDown
		if len(s.order) == 1 {
			action = ActionDown
		}
		s.emit(action, len(s.order)-1, now)
	}

	return s.out
}

// Cancel reports every down pointer as cancelled and forgets them. Hosts
// call it when the window loses focus mid-gesture.
func (s *EbitenSource) Cancel() []Snapshot {
	s.out = s.out[:0]
	if len(s.order) > 0 {
		s.emit(ActionCancel, 0, s.clock())
	}
	s.order = s.order[:0]
	s.touchUsed = [maxPointers]bool{}
	return s.out
}

func (s *EbitenSource) isDown(slot int) bool {
	for _, o := range s.order {
		if o == slot {
			return true
		}
	}
	return false
}

func (s *EbitenSource) emit(action Action, index int, now int64) {
	ps := make([]Pointer, len(s.order))
	for i, slot := range s.order {
		ps[i] = Pointer{ID: slot, X: s.pos[slot].X, Y: s.pos[slot].Y, Pressure: 1}
	}
	s.out = append(s.out, NewSnapshot(action, index, now, ps...).WithRawOffset(s.OffsetX, s.OffsetY))
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *EbitenSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}
