package repchart

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Show opens a window presenting the finished chart and blocks until the
// user closes it. The PNG is saved before this runs, so an unavailable
// display only costs the interactive step.
func Show(title string, img image.Image) {
	a := app.New()
	w := a.NewWindow(title)
	pic := canvas.NewImageFromImage(img)
	pic.FillMode = canvas.ImageFillContain
	w.SetContent(pic)
	w.Resize(fyne.NewSize(1160, 680))
	w.CenterOnScreen()
	w.ShowAndRun()
}
