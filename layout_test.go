package ember

import "testing"

func fixedBox(w, h float32) *Widget {
	return NewVBox().SetWidth(Fixed(w)).SetHeight(Fixed(h))
}

func TestBoxVerticalSequence(t *testing.T) {
	a := fixedBox(80, 30)
	b := fixedBox(80, 40)
	c := fixedBox(80, 50)
	box := NewVBox().SetSpacing(10).AddChild(a, b, c)

	box.Measure(Size{Width: 200, Height: 400})
	box.Layout(Rect{Width: 200, Height: 400})

	wantY := []float32{0, 40, 90}
	for i, child := range []*Widget{a, b, c} {
		if child.Bounds().Y != wantY[i] {
			t.Errorf("child %d Y = %v, want %v", i, child.Bounds().Y, wantY[i])
		}
	}
}

func TestBoxContentHeightSumsChildrenAndSpacing(t *testing.T) {
	box := NewVBox().SetSpacing(10).AddChild(
		fixedBox(80, 30),
		fixedBox(80, 40),
		fixedBox(80, 50),
	)
	got := box.Measure(Size{Width: 200, Height: 400})
	if got.Height != 140 {
		t.Errorf("content height = %v, want 140 (30+40+50 plus two gaps)", got.Height)
	}
	if got.Width != 80 {
		t.Errorf("content width = %v, want 80 (widest child)", got.Width)
	}
}

func TestBoxContentMeasureOffersNetSpace(t *testing.T) {
	fixed := fixedBox(80, 30)
	fill := NewVBox().SetWidth(Fixed(80)).SetHeight(Fill())
	box := NewVBox().SetSpacing(10).AddChild(fixed, fill)

	got := box.Measure(Size{Width: 200, Height: 110})

	// The gap comes off the space offered to children, so the Fill child
	// sees 100, not 110.
	if fill.MeasuredSize().Height != 100 {
		t.Errorf("fill child height = %v, want 100", fill.MeasuredSize().Height)
	}
	if got.Height != 140 {
		t.Errorf("content height = %v, want 140 (30 + 100 + gap)", got.Height)
	}
}

func TestBoxMainAxisCenter(t *testing.T) {
	a := fixedBox(80, 30)
	b := fixedBox(80, 40)
	c := fixedBox(80, 50)
	box := NewVBox().SetSpacing(10).SetAlignment(AlignCenter, AlignStart).AddChild(a, b, c)

	box.Measure(Size{Width: 200, Height: 200})
	box.Layout(Rect{Width: 200, Height: 200})

	// Run is 140 tall inside 200, so the block starts at 30.
	if a.Bounds().Y != 30 {
		t.Errorf("first child Y = %v, want 30", a.Bounds().Y)
	}
	if c.Bounds().Y != 120 {
		t.Errorf("last child Y = %v, want 120", c.Bounds().Y)
	}
}

func TestBoxHorizontalCenter(t *testing.T) {
	a := fixedBox(30, 20)
	b := fixedBox(40, 20)
	c := fixedBox(50, 20)
	box := NewHBox().SetSpacing(10).SetAlignment(AlignCenter, AlignStart).AddChild(a, b, c)

	got := box.Measure(Size{Width: 200, Height: 100})
	if got.Width != 140 {
		t.Errorf("content width = %v, want 140", got.Width)
	}

	box.Layout(Rect{Width: 200, Height: 100})
	if a.Bounds().X != 30 {
		t.Errorf("first child X = %v, want 30", a.Bounds().X)
	}
}

func TestBoxCrossAxisStretch(t *testing.T) {
	child := fixedBox(80, 30)
	box := NewVBox().SetAlignment(AlignStart, AlignStretch).AddChild(child)

	box.Measure(Size{Width: 300, Height: 100})
	box.Layout(Rect{Width: 300, Height: 100})

	if child.Bounds().Width != 300 {
		t.Errorf("stretched child width = %v, want 300", child.Bounds().Width)
	}
}

func TestBoxSkipsInvisibleChildren(t *testing.T) {
	a := fixedBox(80, 30)
	hidden := fixedBox(80, 100).SetVisible(false)
	b := fixedBox(80, 40)
	box := NewVBox().SetSpacing(10).AddChild(a, hidden, b)

	got := box.Measure(Size{Width: 200, Height: 400})
	if got.Height != 80 {
		t.Errorf("content height = %v, want 80 (hidden child contributes nothing)", got.Height)
	}

	box.Layout(Rect{Width: 200, Height: 400})
	if b.Bounds().Y != 40 {
		t.Errorf("second visible child Y = %v, want 40", b.Bounds().Y)
	}
}

func TestBoxPercentChild(t *testing.T) {
	child := NewVBox().SetWidth(Percent(50)).SetHeight(Fixed(20))
	box := NewVBox().AddChild(child)

	box.Measure(Size{Width: 400, Height: 100})
	box.Layout(Rect{Width: 400, Height: 100})

	if child.Bounds().Width != 200 {
		t.Errorf("percent child width = %v, want 200", child.Bounds().Width)
	}
}

func TestStackOverlayAndAlignment(t *testing.T) {
	a := fixedBox(50, 50)
	b := fixedBox(30, 30)
	stack := NewStack().SetAlignment(AlignCenter, AlignCenter).AddChild(a, b)

	stack.Measure(Size{Width: 200, Height: 100})
	stack.Layout(Rect{Width: 200, Height: 100})

	if a.Bounds() != (Rect{X: 75, Y: 25, Width: 50, Height: 50}) {
		t.Errorf("first child bounds = %v", a.Bounds())
	}
	if b.Bounds() != (Rect{X: 85, Y: 35, Width: 30, Height: 30}) {
		t.Errorf("second child bounds = %v", b.Bounds())
	}
}

func TestGridWrapsRows(t *testing.T) {
	grid := NewGrid(3).SetSpacing(10)
	children := make([]*Widget, 7)
	for i := range children {
		children[i] = NewVBox()
		grid.AddChild(children[i])
	}

	grid.Measure(Size{Width: 320, Height: 400})
	grid.Layout(Rect{Width: 320, Height: 400})

	// (320 - 2*10) / 3 = 100 per cell.
	if children[0].Bounds() != (Rect{X: 0, Y: 0, Width: 100, Height: 100}) {
		t.Errorf("cell 0 bounds = %v", children[0].Bounds())
	}
	if children[2].Bounds().X != 220 {
		t.Errorf("cell 2 X = %v, want 220", children[2].Bounds().X)
	}
	if children[3].Bounds() != (Rect{X: 0, Y: 110, Width: 100, Height: 100}) {
		t.Errorf("cell 3 bounds = %v, want start of second row", children[3].Bounds())
	}
	if children[6].Bounds() != (Rect{X: 0, Y: 220, Width: 100, Height: 100}) {
		t.Errorf("cell 6 bounds = %v, want start of third row", children[6].Bounds())
	}
}

func TestGridContentMeasureDividesAvailableWidth(t *testing.T) {
	grid := NewGrid(3).SetSpacing(10)
	for i := 0; i < 7; i++ {
		grid.AddChild(NewVBox())
	}

	got := grid.Measure(Size{Width: 320, Height: 1000})

	// (320 - 2*10) / 3 = 100 per square cell, three rows of 7 children.
	want := Size{Width: 320, Height: 320}
	if got != want {
		t.Errorf("content measure = %v, want %v", got, want)
	}
}

func TestGridContentMeasureWithExplicitCells(t *testing.T) {
	grid := NewGrid(2).SetCellSize(Size{Width: 40, Height: 25}).
		AddChild(NewVBox(), NewVBox(), NewVBox())

	got := grid.Measure(Size{Width: 500, Height: 500})
	want := Size{Width: 80, Height: 50}
	if got != want {
		t.Errorf("content measure = %v, want %v", got, want)
	}
}

func TestGridZeroColumnsDoesNotPanic(t *testing.T) {
	grid := NewGrid(0).AddChild(NewVBox())
	grid.Measure(Size{Width: 100, Height: 100})
	grid.Layout(Rect{Width: 100, Height: 100})
}

func TestGridExplicitCellSize(t *testing.T) {
	child := NewVBox()
	grid := NewGrid(2).SetCellSize(Size{Width: 40, Height: 25}).AddChild(NewVBox(), NewVBox(), child)

	grid.Measure(Size{Width: 500, Height: 500})
	grid.Layout(Rect{Width: 500, Height: 500})

	if child.Bounds() != (Rect{X: 0, Y: 25, Width: 40, Height: 25}) {
		t.Errorf("third cell bounds = %v", child.Bounds())
	}
}

func TestSidebarSplit(t *testing.T) {
	tests := []struct {
		name      string
		pos       SidebarPosition
		wantPanel Rect
		wantMain  Rect
	}{
		{
			name:      "left",
			pos:       SidebarLeft,
			wantPanel: Rect{X: 0, Y: 0, Width: 200, Height: 600},
			wantMain:  Rect{X: 200, Y: 0, Width: 600, Height: 600},
		},
		{
			name:      "right",
			pos:       SidebarRight,
			wantPanel: Rect{X: 600, Y: 0, Width: 200, Height: 600},
			wantMain:  Rect{X: 0, Y: 0, Width: 600, Height: 600},
		},
		{
			name:      "top",
			pos:       SidebarTop,
			wantPanel: Rect{X: 0, Y: 0, Width: 800, Height: 200},
			wantMain:  Rect{X: 0, Y: 200, Width: 800, Height: 400},
		},
		{
			name:      "bottom",
			pos:       SidebarBottom,
			wantPanel: Rect{X: 0, Y: 400, Width: 800, Height: 200},
			wantMain:  Rect{X: 0, Y: 0, Width: 800, Height: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewVBox()
			main := NewVBox()
			sb := NewSidebar(tt.pos, 200).AddChild(panel, main)

			sb.Measure(Size{Width: 800, Height: 600})
			sb.Layout(Rect{Width: 800, Height: 600})

			if panel.Bounds() != tt.wantPanel {
				t.Errorf("panel bounds = %v, want %v", panel.Bounds(), tt.wantPanel)
			}
			if main.Bounds() != tt.wantMain {
				t.Errorf("main bounds = %v, want %v", main.Bounds(), tt.wantMain)
			}
		})
	}
}

func TestSidebarSingleChildNoOp(t *testing.T) {
	panel := NewVBox()
	sb := NewSidebar(SidebarLeft, 200).AddChild(panel)

	sb.Measure(Size{Width: 800, Height: 600})
	sb.Layout(Rect{Width: 800, Height: 600})

	if panel.Bounds() != (Rect{}) {
		t.Errorf("panel bounds = %v, want untouched with fewer than two children", panel.Bounds())
	}
}

func TestLayoutIdempotent(t *testing.T) {
	a := fixedBox(80, 30)
	b := NewVBox().SetWidth(Fill()).SetHeight(Percent(50))
	box := NewVBox().SetSpacing(5).AddChild(a, b)

	box.Measure(Size{Width: 200, Height: 400})
	box.Layout(Rect{Width: 200, Height: 400})
	first := []Rect{a.Bounds(), b.Bounds()}

	box.Layout(Rect{Width: 200, Height: 400})
	if a.Bounds() != first[0] || b.Bounds() != first[1] {
		t.Errorf("second layout moved children: %v %v vs %v", a.Bounds(), b.Bounds(), first)
	}
}

func TestTextMeasurement(t *testing.T) {
	w := NewText("Hello")
	w.SetTextStyle(TextStyle{FontSize: 14, LineHeight: 1.4, Color: RGB(1, 1, 1)})

	got := w.Measure(Size{Width: 1000, Height: 1000})
	if got.Width != 5*14*0.6 {
		t.Errorf("text width = %v, want %v", got.Width, 5*14*0.6)
	}
	if got.Height != 14*1.4 {
		t.Errorf("text height = %v, want %v", got.Height, 14*1.4)
	}
}

func TestScrollViewOffsetAndClamp(t *testing.T) {
	content := NewVBox().SetWidth(Fill()).SetHeight(Fixed(400))
	sv := NewScrollView(Vertical).AddChild(content)

	sv.Measure(Size{Width: 200, Height: 100})
	sv.Layout(Rect{Width: 200, Height: 100})

	if content.Bounds().Y != 0 {
		t.Fatalf("content starts at Y=%v, want 0", content.Bounds().Y)
	}

	// Scrolling down (negative wheel delta) moves content up.
	sv.HandleScroll(ScrollEvent{Position: Point{X: 50, Y: 50}, DeltaY: -3})
	if sv.ScrollOffset().Y != 60 {
		t.Errorf("offset = %v, want 60", sv.ScrollOffset().Y)
	}
	if content.Bounds().Y != -60 {
		t.Errorf("content Y = %v, want -60", content.Bounds().Y)
	}

	// Large delta clamps at content minus viewport.
	sv.HandleScroll(ScrollEvent{Position: Point{X: 50, Y: 50}, DeltaY: -100})
	if sv.ScrollOffset().Y != 300 {
		t.Errorf("offset = %v, want clamp at 300", sv.ScrollOffset().Y)
	}

	// Scrolling back past the top clamps at zero.
	sv.HandleScroll(ScrollEvent{Position: Point{X: 50, Y: 50}, DeltaY: 100})
	if sv.ScrollOffset().Y != 0 {
		t.Errorf("offset = %v, want clamp at 0", sv.ScrollOffset().Y)
	}
}

func TestScrollIgnoredOutsideViewport(t *testing.T) {
	content := NewVBox().SetWidth(Fill()).SetHeight(Fixed(400))
	sv := NewScrollView(Vertical).AddChild(content)
	sv.Measure(Size{Width: 200, Height: 100})
	sv.Layout(Rect{Width: 200, Height: 100})

	handled := sv.HandleScroll(ScrollEvent{Position: Point{X: 500, Y: 500}, DeltaY: -3})
	if handled {
		t.Error("scroll outside the viewport should not be consumed")
	}
	if sv.ScrollOffset().Y != 0 {
		t.Errorf("offset = %v, want 0", sv.ScrollOffset().Y)
	}
}

func TestScrollViewShortContentNeverScrolls(t *testing.T) {
	content := NewVBox().SetWidth(Fill()).SetHeight(Fixed(50))
	sv := NewScrollView(Vertical).AddChild(content)
	sv.Measure(Size{Width: 200, Height: 100})
	sv.Layout(Rect{Width: 200, Height: 100})

	sv.HandleScroll(ScrollEvent{Position: Point{X: 50, Y: 50}, DeltaY: -3})
	if sv.ScrollOffset().Y != 0 {
		t.Errorf("offset = %v, want 0 when content fits", sv.ScrollOffset().Y)
	}
}

func TestScrollViewContentMeasureFillsCrossAxis(t *testing.T) {
	content := NewVBox().SetWidth(Fixed(50)).SetHeight(Fixed(400))
	sv := NewScrollView(Vertical).
		SetWidth(Content()).
		SetHeight(Content()).
		AddChild(content)

	got := sv.Measure(Size{Width: 200, Height: 100})

	// Cross axis spans the viewport even though the content is narrower;
	// the scroll axis reports the unconstrained content extent.
	if got.Width != 200 {
		t.Errorf("width = %v, want the available 200", got.Width)
	}
	if got.Height != 400 {
		t.Errorf("height = %v, want the content's 400", got.Height)
	}
}

func TestScrollToClamps(t *testing.T) {
	content := NewVBox().SetWidth(Fill()).SetHeight(Fixed(400))
	sv := NewScrollView(Vertical).AddChild(content)
	sv.Measure(Size{Width: 200, Height: 100})
	sv.Layout(Rect{Width: 200, Height: 100})

	sv.ScrollTo(Point{Y: 1000})
	if sv.ScrollOffset().Y != 300 {
		t.Errorf("offset = %v, want 300", sv.ScrollOffset().Y)
	}
	sv.ScrollTo(Point{Y: -50})
	if sv.ScrollOffset().Y != 0 {
		t.Errorf("offset = %v, want 0", sv.ScrollOffset().Y)
	}
}

func TestHorizontalScrollView(t *testing.T) {
	content := NewVBox().SetWidth(Fixed(500)).SetHeight(Fill())
	sv := NewScrollView(Horizontal).AddChild(content)
	sv.Measure(Size{Width: 200, Height: 100})
	sv.Layout(Rect{Width: 200, Height: 100})

	sv.HandleScroll(ScrollEvent{Position: Point{X: 50, Y: 50}, DeltaX: -2})
	if sv.ScrollOffset().X != 40 {
		t.Errorf("offset X = %v, want 40", sv.ScrollOffset().X)
	}
	if content.Bounds().X != -40 {
		t.Errorf("content X = %v, want -40", content.Bounds().X)
	}
}
