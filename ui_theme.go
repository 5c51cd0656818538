package main

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font/basicfont"

	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

// uiFace is the text face for every panel widget, built from the bundled
// basic font so no theme fonts have to be shipped.
func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

var (
	uiTextColor  = color.NRGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff}
	uiPanelColor = color.NRGBA{R: 0x14, G: 0x14, B: 0x1c, A: 230}
)

func uiButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(color.NRGBA{R: 0x2a, G: 0x2a, B: 0x38, A: 0xff}),
		Hover:   solidNineSlice(color.NRGBA{R: 0x3a, G: 0x3a, B: 0x4c, A: 0xff}),
		Pressed: solidNineSlice(color.NRGBA{R: 0x20, G: 0x20, B: 0x2c, A: 0xff}),
	}
}

func uiButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{Idle: uiTextColor}
}

func uiLabelColor() *widget.LabelColor {
	return &widget.LabelColor{Idle: uiTextColor, Disabled: color.Gray{Y: 140}}
}
