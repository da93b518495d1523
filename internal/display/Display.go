//Package display draws a target full screen with tcell.
package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gehtsoft-usa/go_moaquiz"
)

//Cell styles
var (
	StyleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleCenter = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	StyleImpact = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleText   = tcell.StyleDefault
)

//Hint is printed below the grid while the view waits for a key.
const Hint = "press any key to answer"

//cellWidth spreads the columns so the grid looks square in a terminal.
const cellWidth = 2

func styleFor(marker rune) tcell.Style {
	switch marker {
	case go_moaquiz.CenterMarker:
		return StyleCenter
	case go_moaquiz.ImpactMarker:
		return StyleImpact
	default:
		return StyleEmpty
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

//Draw renders the caption on the first line, the grid below it and the hint
//under the grid. The screen is not shown.
func Draw(screen tcell.Screen, target go_moaquiz.Target, caption string) {
	screen.Clear()
	drawText(screen, 0, 0, caption, StyleText)
	for row := 0; row < go_moaquiz.GridSize; row++ {
		for col := 0; col < go_moaquiz.GridSize; col++ {
			marker := target.Cell(col, row)
			screen.SetContent(col*cellWidth, row+2, marker, nil, styleFor(marker))
		}
	}
	drawText(screen, 0, go_moaquiz.GridSize+3, Hint, StyleText)
}

//Viewer shows targets on a fresh screen and returns after a key press.
type Viewer struct {
	open func() (tcell.Screen, error)
}

//NewViewer creates a viewer on the terminal.
func NewViewer() *Viewer {
	return &Viewer{open: func() (tcell.Screen, error) {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		if err := screen.Init(); err != nil {
			return nil, err
		}
		return screen, nil
	}}
}

//NewViewerWithScreen creates a viewer on screens built by open.
//The returned screens must already be initialized.
func NewViewerWithScreen(open func() (tcell.Screen, error)) *Viewer {
	return &Viewer{open: open}
}

//View draws the target and blocks until a key is pressed. The screen is
//finalized before returning so that the line prompt can continue.
func (v *Viewer) View(target go_moaquiz.Target, caption string) error {
	screen, err := v.open()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	defer screen.Fini()

	Draw(screen, target, caption)
	screen.Show()
	for {
		switch screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			return nil
		}
	}
}
