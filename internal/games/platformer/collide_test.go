package platformer

import "testing"

// worldFromRows builds a tile world from level text for collision tests.
func worldFromRows(rows []string) *TileWorld {
	l := &Level{ID: "test", Name: "Test", Rows: rows}
	w, _, _, _ := l.Build()
	return w
}

func TestFallLandsOnSolid(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"        ",
		"========",
	})

	b := Body{X: 8, Y: 20, W: 12, H: 14, VY: 5}
	MoveAndCollide(w, &b, 0, 20)

	// Ground row top is at y=48; foot snaps to it.
	if b.Y != 48-b.H {
		t.Errorf("Y = %v, want %v", b.Y, 48-b.H)
	}
	if b.VY != 0 {
		t.Errorf("VY = %v, want 0", b.VY)
	}
	if !b.OnGround {
		t.Error("expected OnGround after landing")
	}
}

func TestWallBlocksHorizontal(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"   #    ",
		"========",
	})

	// Standing on the ground, walking right into the wall tile at x=48.
	b := Body{X: 30, Y: 34, W: 12, H: 14, VX: 2}
	MoveAndCollide(w, &b, 10, 0)

	if b.X != 48-b.W {
		t.Errorf("X = %v, want %v", b.X, 48-b.W)
	}
	if b.VX != 0 {
		t.Errorf("VX = %v, want 0", b.VX)
	}

	// And from the other side, walking left.
	b = Body{X: 70, Y: 34, W: 12, H: 14, VX: -2}
	MoveAndCollide(w, &b, -10, 0)

	if b.X != 64 {
		t.Errorf("X = %v, want 64", b.X)
	}
}

func TestEdgeGrazeSlidesPast(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"   #    ",
		"        ",
		"========",
	})

	// Vertical overlap with the floating tile (y=16..32) is exactly the
	// tolerance, so the horizontal move is not blocked.
	b := Body{X: 30, Y: 30, W: 12, H: 14}
	MoveAndCollide(w, &b, 10, 0)

	if b.X != 40 {
		t.Errorf("X = %v, want 40 (graze should not block)", b.X)
	}

	// One unit deeper and the same move is blocked.
	b = Body{X: 30, Y: 29, W: 12, H: 14}
	MoveAndCollide(w, &b, 10, 0)

	if b.X != 48-b.W {
		t.Errorf("X = %v, want %v (deep overlap should block)", b.X, 48-b.W)
	}
}

func TestHeadBump(t *testing.T) {
	w := worldFromRows([]string{
		"  #     ",
		"        ",
		"========",
	})

	// Jumping up into the tile at y=0..16 clamps the top to the tile bottom.
	b := Body{X: 34, Y: 20, W: 12, H: 14, VY: -4}
	MoveAndCollide(w, &b, 0, -10)

	if b.Y != 16 {
		t.Errorf("Y = %v, want 16", b.Y)
	}
	if b.VY != 0 {
		t.Errorf("VY = %v, want 0", b.VY)
	}
	if b.OnGround {
		t.Error("head bump must not set OnGround")
	}
}

func TestOneWayLandsFromAbove(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"  ----  ",
		"        ",
	})

	// Platform top is at y=32.
	b := Body{X: 40, Y: 10, W: 12, H: 14, VY: 6}
	MoveAndCollide(w, &b, 0, 12)

	if b.Y != 32-b.H {
		t.Errorf("Y = %v, want %v", b.Y, 32-b.H)
	}
	if !b.OnGround {
		t.Error("expected landing on one-way platform")
	}
}

func TestOneWayNeverBlocksUpward(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"  ----  ",
		"        ",
	})

	b := Body{X: 40, Y: 40, W: 12, H: 14, VY: -8}
	MoveAndCollide(w, &b, 0, -20)

	if b.Y != 20 {
		t.Errorf("Y = %v, want 20 (upward pass must not be blocked)", b.Y)
	}
	if b.VY != -8 {
		t.Errorf("VY = %v, want -8", b.VY)
	}
}

func TestOneWayNeverBlocksLateral(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"  ----  ",
		"        ",
	})

	// Body overlapping the platform band moves sideways freely.
	b := Body{X: 10, Y: 26, W: 12, H: 14}
	MoveAndCollide(w, &b, 30, 0)

	if b.X != 40 {
		t.Errorf("X = %v, want 40", b.X)
	}
}

func TestOneWayDeepFootFallsThrough(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"  ----  ",
		"        ",
	})

	// Foot already 8 units below the surface before the step: outside the
	// catch tolerance, so the body keeps falling.
	b := Body{X: 40, Y: 26, W: 12, H: 14, VY: 4}
	MoveAndCollide(w, &b, 0, 4)

	if b.OnGround {
		t.Error("foot below tolerance must fall through")
	}
	if b.Y != 30 {
		t.Errorf("Y = %v, want 30", b.Y)
	}
}

func TestOneWayEdgeMarginSlipsPast(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"  -     ",
		"        ",
	})

	// Platform tile spans x=32..48. Overlap only inside the edge margin
	// does not catch the body.
	b := Body{X: 22, Y: 10, W: 12, H: 14, VY: 6}
	MoveAndCollide(w, &b, 0, 12)

	if b.OnGround {
		t.Error("edge graze must not land")
	}

	// One more unit of overlap and it lands.
	b = Body{X: 23, Y: 10, W: 12, H: 14, VY: 6}
	MoveAndCollide(w, &b, 0, 12)

	if !b.OnGround {
		t.Error("expected landing past the edge margin")
	}
}

func TestVerticalMoveClearsStaleGrounded(t *testing.T) {
	w := worldFromRows([]string{
		"        ",
		"        ",
		"        ",
		"========",
	})

	// A body that walks off a ledge keeps OnGround until it actually moves
	// vertically without landing.
	b := Body{X: 8, Y: 10, W: 12, H: 14, OnGround: true}
	MoveAndCollide(w, &b, 0, 2)

	if b.OnGround {
		t.Error("OnGround must clear when a vertical move does not land")
	}
}
