package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// factWrapWidth is the character count per wrapped line in the modal.
const factWrapWidth = 52

// TriviaUI holds the ebitenui interface for the trivia modal
type TriviaUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnNext  func()
	OnClose func()

	// Widget references for updates
	factText *widget.Text

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTriviaUI creates the modal. A font parse failure is returned so the
// caller can disable trivia instead of crashing later.
func NewTriviaUI(onNext, onClose func()) (*TriviaUI, error) {
	tui := &TriviaUI{
		OnNext:  onNext,
		OnClose: onClose,
	}

	if err := tui.loadFonts(); err != nil {
		return nil, err
	}
	tui.buildUI()

	return tui, nil
}

func (tui *TriviaUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	return nil
}

func (tui *TriviaUI) buildUI() {
	// Root container with AnchorLayout; transparent so the sky shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panelPadding := widget.Insets{Top: 14, Bottom: 14, Left: 18, Right: 18}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{16, 20, 42, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&panelPadding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("NEW YEAR TRIVIA", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	panel.AddChild(titleLabel)

	tui.factText = widget.NewText(
		widget.TextOpts.Text("", &tui.normalFace, color.RGBA{230, 235, 245, 255}),
	)
	panel.AddChild(tui.factText)

	panel.AddChild(tui.buildButtonsRow())

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Facts rotate on their own while open", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 160, 185, 255},
		}),
	)
	panel.AddChild(hintLabel)

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TriviaUI) buildButtonsRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	nextButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 26),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("Next fact", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tui.OnNext != nil {
				tui.OnNext()
			}
		}),
	)
	row.AddChild(nextButton)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 26),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("Close", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tui.OnClose != nil {
				tui.OnClose()
			}
		}),
	)
	row.AddChild(closeButton)

	return row
}

func (tui *TriviaUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{50, 58, 96, 255})
	hover := image.NewNineSliceColor(color.RGBA{70, 78, 120, 255})
	pressed := image.NewNineSliceColor(color.RGBA{36, 42, 72, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// SetFact updates the displayed fact, word-wrapped for the panel width.
func (tui *TriviaUI) SetFact(fact string) {
	wrapped := wrapText(fact, factWrapWidth)
	if tui.factText.Label != wrapped {
		tui.factText.Label = wrapped
	}
}

// Update drives the widget tree; call once per tick while the modal is open.
func (tui *TriviaUI) Update() {
	tui.UI.Update()
}

// Draw renders the modal on top of the scene.
func (tui *TriviaUI) Draw(screen *ebiten.Image) {
	tui.UI.Draw(screen)
}

// wrapText breaks s into lines of at most width characters on word
// boundaries. Words longer than width get their own line.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
