package widgets

import (
	"unicode"

	"github.com/go-vellum/vellum/pkg/canvas"
	"github.com/go-vellum/vellum/pkg/editing"
	"github.com/go-vellum/vellum/pkg/events"
	"github.com/go-vellum/vellum/pkg/layout"
	"github.com/go-vellum/vellum/pkg/rendering"
	"github.com/go-vellum/vellum/pkg/shell"
)

// DefaultTextBoxHeight is the default height of a text box in logical
// pixels.
const DefaultTextBoxHeight = 32

// TextBox is a single-line editable text field. It owns no text itself;
// an editing.Controller holds the value and cursor so the application can
// read or change them from outside.
type TextBox[M any] struct {
	controller  *editing.Controller
	width       layout.Length
	height      layout.Length
	textSize    float64
	padding     float64
	textColor   rendering.Color
	background  rendering.Color
	borderColor rendering.Color
	focusColor  rendering.Color
	selection   rendering.Color
	onChanged   func(string) *M
	onSubmitted func(string) *M
	focused     bool
	cache       *canvas.Cache
	unsubscribe func()
}

// NewTextBox creates a text box backed by the given controller.
func NewTextBox[M any](controller *editing.Controller) *TextBox[M] {
	t := &TextBox[M]{
		controller:  controller,
		width:       layout.Fill(),
		height:      layout.Fixed(DefaultTextBoxHeight),
		textSize:    14,
		padding:     8,
		textColor:   rendering.ColorBlack,
		background:  rendering.ColorWhite,
		borderColor: rendering.RGB(0xC0, 0xC0, 0xC0),
		focusColor:  rendering.RGB(0x3B, 0x82, 0xF6),
		selection:   rendering.RGBA(0x3B, 0x82, 0xF6, 0x60),
		cache:       canvas.NewCache(),
	}
	t.unsubscribe = controller.AddListener(t.cache.Clear)
	return t
}

// Width sets the width policy of the text box.
func (t *TextBox[M]) Width(width layout.Length) *TextBox[M] {
	t.width = width
	return t
}

// Height sets the height policy of the text box.
func (t *TextBox[M]) Height(height layout.Length) *TextBox[M] {
	t.height = height
	return t
}

// TextSize sets the font size.
func (t *TextBox[M]) TextSize(size float64) *TextBox[M] {
	t.textSize = size
	return t
}

// OnChanged sets the message produced whenever the text changes.
func (t *TextBox[M]) OnChanged(fn func(string) *M) *TextBox[M] {
	t.onChanged = fn
	return t
}

// OnSubmitted sets the message produced when enter is pressed.
func (t *TextBox[M]) OnSubmitted(fn func(string) *M) *TextBox[M] {
	t.onSubmitted = fn
	return t
}

// Controller returns the backing controller.
func (t *TextBox[M]) Controller() *editing.Controller {
	return t.controller
}

// Focused reports whether the text box currently receives key input.
func (t *TextBox[M]) Focused() bool {
	return t.focused
}

// Dispose releases the controller subscription. The text box must not be
// used afterwards.
func (t *TextBox[M]) Dispose() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

// Layout resolves the configured width and height policies against the
// given limits.
func (t *TextBox[M]) Layout(limits layout.Limits) rendering.Size {
	return limits.Resolve(t.width, t.height)
}

// OnEvent routes pointer and key input to the field. Key input is only
// consumed while focused; pointer presses move focus in and out.
func (t *TextBox[M]) OnEvent(event events.Event, bounds rendering.Rect, cursorPosition rendering.Offset, sh *shell.Shell[M]) events.Status {
	switch e := event.(type) {
	case events.PointerEvent:
		return t.onPointer(e, bounds, sh)
	case events.KeyEvent:
		if !t.focused || e.Phase != events.KeyPressed {
			return events.Ignored
		}
		return t.onKey(e, sh)
	case events.CharEvent:
		if !t.focused || unicode.IsControl(e.Rune) {
			return events.Ignored
		}
		t.controller.Insert(e.Rune)
		t.publishChanged(sh)
		return events.Captured
	default:
		return events.Ignored
	}
}

func (t *TextBox[M]) onPointer(event events.PointerEvent, bounds rendering.Rect, sh *shell.Shell[M]) events.Status {
	if event.Phase != events.PointerDown {
		return events.Ignored
	}
	if !bounds.Contains(event.Position) {
		if t.focused {
			t.focused = false
			t.cache.Clear()
			sh.RequestRedraw()
		}
		return events.Ignored
	}

	t.focused = true
	local := event.Position.Sub(bounds.Origin())
	t.placeCaret(local.X)
	t.cache.Clear()
	sh.RequestRedraw()
	return events.Captured
}

func (t *TextBox[M]) onKey(event events.KeyEvent, sh *shell.Shell[M]) events.Status {
	switch event.Key {
	case events.KeyBackspace:
		t.controller.Backspace()
		t.publishChanged(sh)
	case events.KeyDelete:
		t.controller.Delete()
		t.publishChanged(sh)
	case events.KeyLeft:
		if event.Modifiers.Shift {
			t.controller.SelectLeft()
		} else {
			t.controller.MoveLeft()
		}
		sh.RequestRedraw()
	case events.KeyRight:
		if event.Modifiers.Shift {
			t.controller.SelectRight()
		} else {
			t.controller.MoveRight()
		}
		sh.RequestRedraw()
	case events.KeyHome:
		t.controller.MoveToStart()
		sh.RequestRedraw()
	case events.KeyEnd:
		t.controller.MoveToEnd()
		sh.RequestRedraw()
	case events.KeyEnter:
		if t.onSubmitted != nil {
			if message := t.onSubmitted(t.controller.Text()); message != nil {
				sh.Publish(*message)
			}
		}
	case events.KeyEscape:
		t.focused = false
		t.cache.Clear()
		sh.RequestRedraw()
	default:
		return events.Ignored
	}
	return events.Captured
}

func (t *TextBox[M]) publishChanged(sh *shell.Shell[M]) {
	if t.onChanged != nil {
		if message := t.onChanged(t.controller.Text()); message != nil {
			sh.Publish(*message)
		}
	}
	sh.RequestRedraw()
}

// MouseInteraction reports the text selection pointer while hovering.
func (t *TextBox[M]) MouseInteraction(bounds rendering.Rect, cursorPosition rendering.Offset) canvas.Interaction {
	if canvas.FromWindow(cursorPosition).IsOver(bounds) {
		return canvas.InteractionText
	}
	return canvas.InteractionNone
}

// Draw renders the field chrome, text, selection highlight, and caret.
func (t *TextBox[M]) Draw(bounds rendering.Rect, cursorPosition rendering.Offset) []*canvas.Geometry {
	if bounds.Width() < 1 || bounds.Height() < 1 {
		return nil
	}
	geometry := t.cache.Draw(bounds.Size(), t.drawField)
	return []*canvas.Geometry{geometry}
}

func (t *TextBox[M]) drawField(f *canvas.Frame) {
	field := rendering.RectFromSize(f.Size())
	f.FillRect(field, canvas.Fill{Color: t.background})

	border := canvas.DefaultStroke()
	border.Color = t.borderColor
	if t.focused {
		border.Color = t.focusColor
	}
	outline := rendering.NewPath()
	outline.Rectangle(0, 0, f.Width(), f.Height())
	f.Stroke(outline, border)

	text := t.controller.Text()
	top := (f.Height() - t.textSize) / 2

	if start, end, ok := t.controller.Selection(); ok {
		left := t.padding + t.prefixWidth(text, start)
		right := t.padding + t.prefixWidth(text, end)
		f.FillRect(
			rendering.RectFromLTWH(left, top, right-left, t.textSize),
			canvas.Fill{Color: t.selection},
		)
	}

	f.FillText(canvas.Text{
		Content:  text,
		Position: rendering.Offset{X: t.padding, Y: top},
		Color:    t.textColor,
		Size:     t.textSize,
	})

	if t.focused && !t.hasSelection() {
		x := t.padding + t.prefixWidth(text, t.controller.CaretPosition())
		caret := rendering.NewPath()
		caret.MoveTo(x, top)
		caret.LineTo(x, top+t.textSize)
		stroke := canvas.DefaultStroke()
		stroke.Color = t.textColor
		f.Stroke(caret, stroke)
	}
}

func (t *TextBox[M]) hasSelection() bool {
	_, _, ok := t.controller.Selection()
	return ok
}

// placeCaret moves the caret to the character boundary closest to the
// given x position inside the field.
func (t *TextBox[M]) placeCaret(x float64) {
	text := []rune(t.controller.Text())
	target := x - t.padding

	best := 0
	bestDistance := target
	if bestDistance < 0 {
		bestDistance = -bestDistance
	}
	for i := 1; i <= len(text); i++ {
		distance := t.prefixWidth(string(text), i) - target
		if distance < 0 {
			distance = -distance
		}
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}

	t.controller.MoveToStart()
	for i := 0; i < best; i++ {
		t.controller.MoveRight()
	}
}

// prefixWidth measures the rendered width of the first n runes of text.
func (t *TextBox[M]) prefixWidth(text string, n int) float64 {
	runes := []rune(text)
	if n > len(runes) {
		n = len(runes)
	}
	if n <= 0 {
		return 0
	}
	measured := rendering.LayoutText(string(runes[:n]), rendering.TextStyle{Size: t.textSize})
	return measured.Size.Width
}
