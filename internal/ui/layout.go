package ui

import "image"

// Screen size in logical pixels.
const (
	ScreenWidth  = 1000
	ScreenHeight = 700
)

// Fixed screen regions.
var (
	TaxRect       = image.Rect(30, 120, 390, 380)
	SpendingRect  = image.Rect(380, 120, 740, 380)
	IndicatorRect = image.Rect(50, 450, 950, 670)
	ChartRect     = image.Rect(750, 100, 970, 440)
	ExecuteRect   = image.Rect(ScreenWidth/2-100, 400, ScreenWidth/2+100, 450)
	RestartRect   = image.Rect(ScreenWidth-150, 30, ScreenWidth-30, 70)
)

const (
	sliderWidth   = 300
	sliderHeight  = 20
	sliderTop     = 180
	sliderSpacing = 50
	taxSliderX    = 50
	spendSliderX  = 400

	messageBoxWidth  = 700
	messageBoxHeight = 200
	boxButtonWidth   = 100
	boxButtonHeight  = 40
)

// SliderTrack returns the track of the i-th slider in a column starting at x.
func SliderTrack(x, i int) image.Rectangle {
	top := sliderTop + i*sliderSpacing
	return image.Rect(x, top, x+sliderWidth, top+sliderHeight)
}

// MessageBoxLayout returns the centred message box and its restart and quit
// buttons.
func MessageBoxLayout() (box, restart, quit image.Rectangle) {
	x := (ScreenWidth - messageBoxWidth) / 2
	y := (ScreenHeight - messageBoxHeight) / 2
	box = image.Rect(x, y, x+messageBoxWidth, y+messageBoxHeight)
	by := box.Max.Y - 60
	cx := x + messageBoxWidth/2
	restart = image.Rect(cx-120, by, cx-120+boxButtonWidth, by+boxButtonHeight)
	quit = image.Rect(cx+20, by, cx+20+boxButtonWidth, by+boxButtonHeight)
	return box, restart, quit
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
