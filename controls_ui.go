package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/starwell/starwell/common"
	"github.com/starwell/starwell/config"

	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ControlsUI is the right-anchored control panel: pause/clear/galaxy/export
// buttons, stepper rows for the live physics scalars, and a body counter fed
// by the simulation's count observer.
type ControlsUI struct {
	ui *ebitenui.UI

	pauseBtn   *widget.Button
	countLabel *widget.Label

	gravityLabel *widget.Label
	stepLabel    *widget.Label
	massLabel    *widget.Label
}

// NewControlsUI builds the panel using colored nine-slices and the built-in
// basic font, same as the editor theme, so no font assets are required.
func NewControlsUI(g *Game) *ControlsUI {
	c := &ControlsUI{}
	face := uiFace()

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(uiPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	title := widget.NewLabel(widget.LabelOpts.Text("starwell", face, uiLabelColor()))
	panel.AddChild(title)

	c.countLabel = widget.NewLabel(widget.LabelOpts.Text("bodies: 0", face, uiLabelColor()))
	panel.AddChild(c.countLabel)

	c.pauseBtn = newPanelButton("Pause", face, func() { g.sim.TogglePause() })
	panel.AddChild(c.pauseBtn)
	panel.AddChild(newPanelButton("Clear", face, func() { g.sim.Clear() }))
	panel.AddChild(newPanelButton("Spawn Galaxy", face, func() { g.spawnGalaxy() }))
	panel.AddChild(newPanelButton("Export PNG", face, func() { g.requestExport() }))

	c.gravityLabel = c.addStepperRow(panel, face, func(dir float64) {
		s := g.cfg.Current()
		s.Gravity = common.Clamp(s.Gravity+dir*0.5, 0, 100)
		g.cfg.Set(s)
	})
	c.stepLabel = c.addStepperRow(panel, face, func(dir float64) {
		s := g.cfg.Current()
		s.TimeStep = common.Clamp(s.TimeStep+dir*0.02, 0.01, 1)
		g.cfg.Set(s)
	})
	c.massLabel = c.addStepperRow(panel, face, func(dir float64) {
		s := g.cfg.Current()
		if dir > 0 {
			s.DefaultMass = common.Clamp(s.DefaultMass*2, 1, 10000)
		} else {
			s.DefaultMass = common.Clamp(s.DefaultMass/2, 1, 10000)
		}
		g.cfg.Set(s)
	})

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	c.ui = &ebitenui.UI{Container: root}

	g.sim.OnCountChange(func(n int) {
		c.countLabel.Label = fmt.Sprintf("bodies: %d", n)
	})
	g.sim.OnPauseChange(func(paused bool) {
		label := "Pause"
		if paused {
			label = "Resume"
		}
		if text := c.pauseBtn.Text(); text != nil {
			text.Label = label
		}
	})

	c.Refresh(g.cfg.Current())
	return c
}

// Refresh re-renders the scalar value labels. Called after any stepper click
// and once per frame so file-watch reloads show up too.
func (c *ControlsUI) Refresh(s config.Settings) {
	c.gravityLabel.Label = fmt.Sprintf("G  %.2f", s.Gravity)
	c.stepLabel.Label = fmt.Sprintf("dt %.2f", s.TimeStep)
	c.massLabel.Label = fmt.Sprintf("m  %.0f", s.DefaultMass)
}

// addStepperRow appends a "- value +" row and returns its value label. The
// step callback receives -1 or +1.
func (c *ControlsUI) addStepperRow(panel *widget.Container, face *ebtext.Face, step func(dir float64)) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(newStepButton("-", face, func() { step(-1) }))
	label := widget.NewLabel(
		widget.LabelOpts.Text("", face, uiLabelColor()),
	)
	row.AddChild(label)
	row.AddChild(newStepButton("+", face, func() { step(1) }))
	panel.AddChild(row)
	return label
}

func newPanelButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(uiButtonImage()),
		widget.ButtonOpts.Text(label, face, uiButtonTextColor()),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(176, 26)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { onClick() }),
	)
}

func newStepButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(uiButtonImage()),
		widget.ButtonOpts.Text(label, face, uiButtonTextColor()),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(26, 26)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { onClick() }),
	)
}
