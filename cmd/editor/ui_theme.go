package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	panelColor   = color.RGBA{15, 23, 42, 240}
	buttonIdle   = color.RGBA{51, 65, 85, 255}
	buttonHover  = color.RGBA{71, 85, 105, 255}
	buttonActive = color.RGBA{37, 99, 235, 255}
	textColor    = color.RGBA{226, 232, 240, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(buttonIdle),
		Hover:   solidNineSlice(buttonHover),
		Pressed: solidNineSlice(buttonActive),
	}
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image:    buttonImage(),
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     textColor,
				Hover:    textColor,
				Pressed:  color.White,
				Disabled: color.Gray{Y: 128},
			},
		},
	}
}
