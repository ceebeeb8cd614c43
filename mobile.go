package gesture

import (
	"time"

	"golang.org/x/mobile/event/touch"
)

// MobileSource converts golang.org/x/mobile touch events, which describe
// one finger at a time, into Snapshots holding every finger that is down.
type MobileSource struct {
	// OffsetX and OffsetY are applied as the raw offset of every snapshot.
	OffsetX, OffsetY float64

	clock func() int64
	seqs  []touch.Sequence
	pos   map[touch.Sequence]Vec2
}

// NewMobileSource creates an empty source.
func NewMobileSource() *MobileSource {
	start := time.Now()
	return &MobileSource{
		clock: func() int64 { return time.Since(start).Milliseconds() },
		pos:   make(map[touch.Sequence]Vec2),
	}
}

// Handle converts e. It returns false for events that do not belong to a
// known finger, such as a move or end for a sequence that never began.
func (s *MobileSource) Handle(e touch.Event) (Snapshot, bool) {
	now := s.clock()
	p := Vec2{float64(e.X), float64(e.Y)}
	idx := s.index(e.Sequence)

	switch e.Type {
	case touch.TypeBegin:
		if idx >= 0 {
			// Duplicate begin: treat as a move of the existing finger.
			s.pos[e.Sequence] = p
			return s.snapshot(ActionMove, 0, now), true
		}
		s.seqs = append(s.seqs, e.Sequence)
		s.pos[e.Sequence] = p
		action := ActionPointerDown
		if len(s.seqs) == 1 {
			action = ActionDown
		}
		return s.snapshot(action, len(s.seqs)-1, now), true
	case touch.TypeMove:
		if idx < 0 {
			return Snapshot{}, false
		}
		s.pos[e.Sequence] = p
		return s.snapshot(ActionMove, 0, now), true
	case touch.TypeEnd:
		if idx < 0 {
			return Snapshot{}, false
		}
		s.pos[e.Sequence] = p
		action := ActionPointerUp
		if len(s.seqs) == 1 {
			action = ActionUp
		}
		snap := s.snapshot(action, idx, now)
		s.seqs = append(s.seqs[:idx], s.seqs[idx+1:]...)
		delete(s.pos, e.Sequence)
		return snap, true
	}
	Logger().Warn("gesture: unknown touch type", "type", e.Type.String())
	return Snapshot{}, false
}

// PointerCount returns the number of fingers currently down.
func (s *MobileSource) PointerCount() int { return len(s.seqs) }

func (s *MobileSource) index(seq touch.Sequence) int {
	for i, q := range s.seqs {
		if q == seq {
			return i
		}
	}
	return -1
}

func (s *MobileSource) snapshot(action Action, index int, now int64) Snapshot {
	ps := make([]Pointer, len(s.seqs))
	for i, q := range s.seqs {
		p := s.pos[q]
		ps[i] = Pointer{ID: int(q), X: p.X, Y: p.Y, Pressure: 1}
	}
	return NewSnapshot(action, index, now, ps...).WithRawOffset(s.OffsetX, s.OffsetY)
}
