package controls

import (
	"testing"

	"github.com/Faultbox/showroom/internal/game/entity"
	"github.com/Faultbox/showroom/pkg/math"
)

// changeRecorder collects proximity notifications.
type changeRecorder struct {
	calls []*entity.Candidate
}

func (r *changeRecorder) record(c *entity.Candidate) {
	r.calls = append(r.calls, c)
}

func TestProximityEnterExitFiresOnce(t *testing.T) {
	rec := &changeRecorder{}
	tr := NewProximityTracker(2.0, rec.record)

	sign := &entity.Candidate{Position: math.Vec3{X: 5, Z: 0}, Interactive: true, Title: "sign"}
	tr.SetCandidates([]*entity.Candidate{sign})

	// Far away: no notification, repeated ticks included.
	for i := 0; i < 5; i++ {
		tr.Update(math.Vec2{X: 0, Z: 0})
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no notifications out of range, got %d", len(rec.calls))
	}

	// Walk into range: exactly one notification, then silence while the
	// selection is unchanged.
	for i := 0; i < 10; i++ {
		tr.Update(math.Vec2{X: 4, Z: 0})
	}
	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 enter notification, got %d", len(rec.calls))
	}
	if rec.calls[0] != sign {
		t.Errorf("enter notification carried %v, want sign", rec.calls[0])
	}

	// Walk out: exactly one nil notification.
	for i := 0; i < 10; i++ {
		tr.Update(math.Vec2{X: 0, Z: 0})
	}
	if len(rec.calls) != 2 {
		t.Fatalf("expected 2 notifications after exit, got %d", len(rec.calls))
	}
	if rec.calls[1] != nil {
		t.Errorf("exit notification carried %v, want nil", rec.calls[1])
	}
}

func TestProximitySwitchesToNearer(t *testing.T) {
	rec := &changeRecorder{}
	tr := NewProximityTracker(10.0, rec.record)

	a := &entity.Candidate{Position: math.Vec3{X: -1, Z: 0}, Interactive: true, Title: "a"}
	b := &entity.Candidate{Position: math.Vec3{X: 1, Z: 0}, Interactive: true, Title: "b"}
	tr.SetCandidates([]*entity.Candidate{a, b})

	tr.Update(math.Vec2{X: -0.5, Z: 0}) // nearer to a
	tr.Update(math.Vec2{X: 0.5, Z: 0})  // nearer to b

	if len(rec.calls) != 2 {
		t.Fatalf("expected 2 notifications (a then b), got %d", len(rec.calls))
	}
	if rec.calls[0] != a || rec.calls[1] != b {
		t.Errorf("notifications = [%v %v], want [a b]", rec.calls[0], rec.calls[1])
	}
}

func TestProximityTieBreaksByListOrder(t *testing.T) {
	rec := &changeRecorder{}
	tr := NewProximityTracker(10.0, rec.record)

	// Equidistant candidates: first in list order wins.
	first := &entity.Candidate{Position: math.Vec3{X: 1, Z: 0}, Interactive: true, Title: "first"}
	second := &entity.Candidate{Position: math.Vec3{X: -1, Z: 0}, Interactive: true, Title: "second"}
	tr.SetCandidates([]*entity.Candidate{first, second})

	tr.Update(math.Vec2{})

	if tr.Current() != first {
		t.Errorf("tie selected %v, want first in list order", tr.Current())
	}
}

func TestProximityIgnoresNonInteractive(t *testing.T) {
	tr := NewProximityTracker(5.0, nil)

	deco := &entity.Candidate{Position: math.Vec3{X: 0.1, Z: 0}, Interactive: false}
	sign := &entity.Candidate{Position: math.Vec3{X: 2, Z: 0}, Interactive: true}
	tr.SetCandidates([]*entity.Candidate{deco, sign})

	tr.Update(math.Vec2{})

	if tr.Current() != sign {
		t.Errorf("selected %v, want the interactive candidate", tr.Current())
	}
}

func TestProximityEmptyListAlwaysNil(t *testing.T) {
	rec := &changeRecorder{}
	tr := NewProximityTracker(5.0, rec.record)

	for i := 0; i < 10; i++ {
		tr.Update(math.Vec2{X: float32(i), Z: 0})
	}

	if tr.Current() != nil {
		t.Errorf("expected nil selection with no candidates, got %v", tr.Current())
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no notifications with no candidates, got %d", len(rec.calls))
	}
}
