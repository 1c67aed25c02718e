package overlay

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"klava/internal/i18n"
	"klava/internal/keystate"
)

// draw renders the full overlay frame for the given active key set.
func (w *Window) draw(gtx layout.Context, keys []string) {
	drawBackground(gtx, w.config.BGColor)

	layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Key chips (or placeholder when nothing is held)
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				if len(keys) == 0 {
					return drawCenteredLabel(gtx, i18n.T("overlay_empty"), w.config.TextDimColor)
				}
				return drawKeyRow(gtx, keys, w.config)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),

			// Hint line
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = w.config.TextDimColor
				return material.Label(th, unit.Sp(11), i18n.T("overlay_hint")).Layout(gtx)
			}),
		)
	})
}

// drawBackground draws a rectangle background.
func drawBackground(gtx layout.Context, col color.NRGBA) {
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, col, rect.Op())
}

// drawCenteredLabel draws a single centered label.
func drawCenteredLabel(gtx layout.Context, text string, col color.NRGBA) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = col
		return material.Label(th, unit.Sp(15), text).Layout(gtx)
	})
}

// drawKeyRow draws one chip per held key.
func drawKeyRow(gtx layout.Context, keys []string, cfg Config) layout.Dimensions {
	children := make([]layout.FlexChild, 0, 2*len(keys))
	for _, k := range keys {
		k := k
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return drawKeyChip(gtx, k, cfg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		)
	}
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

// drawKeyChip draws a key name in a rounded badge. Named keys get the
// accent color so modifiers stand out.
func drawKeyChip(gtx layout.Context, keyID string, cfg Config) layout.Dimensions {
	bg := cfg.ChipColor
	if keystate.IsNamedKey(keyID) {
		bg = cfg.AccentColor
	}

	// Record content to measure
	macro := op.Record(gtx.Ops)
	dims := layout.Inset{
		Top: unit.Dp(5), Bottom: unit.Dp(5),
		Left: unit.Dp(12), Right: unit.Dp(12),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = cfg.TextColor
		lbl := material.Label(th, unit.Sp(16), displayName(keyID))
		lbl.Font.Weight = font.Bold
		return lbl.Layout(gtx)
	})
	call := macro.Stop()

	// Draw background
	rr := gtx.Dp(unit.Dp(7))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bg, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

// displayName returns the label shown on a chip.
func displayName(keyID string) string {
	if keyID == " " {
		return "Space"
	}
	return keyID
}
