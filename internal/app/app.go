//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/message"

	"fiscal-sim/internal/economy"
	"fiscal-sim/internal/i18n"
	"fiscal-sim/internal/render"
	"fiscal-sim/internal/ui"
)

// Game adapts an economy session to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	printer *message.Printer
	fonts   ui.Fonts

	session *economy.Session
	sliders []*ui.Slider
	execute *ui.Button
	restart *ui.Button
	panel   *ui.IndicatorPanel
	chart   render.Chart
	box     *ui.MessageBox
	prompt  *ui.Prompt

	cursorX, cursorY int
}

// New constructs a Game with a fresh session.
func New(cfg *Config, bundle *i18n.Bundle, fonts ui.Fonts) *Game {
	g := &Game{
		cfg:     cfg,
		printer: bundle.Printer(cfg.Locale),
		fonts:   fonts,
		execute: ui.NewButton(ui.ExecuteRect, "button.execute"),
		restart: ui.NewButton(ui.RestartRect, "button.restart"),
		box:     ui.NewMessageBox(),
		chart: render.Chart{
			Bounds: ui.ChartRect,
			Target: economy.DefaultConfig().TargetGDP,
			Floor:  render.DefaultFloor,
		},
	}
	g.panel = ui.NewIndicatorPanel(nil, ui.IndicatorRect)
	g.Reset()
	return g
}

// Reset replaces the session with a new one and puts the sliders back on
// the baseline policy.
func (g *Game) Reset() {
	g.session = economy.NewSession(economy.DefaultConfig())
	g.sliders = ui.PolicySliders(g.session.Policy())
	g.panel.SetProvider(g.session)
	g.box.Hide()
	g.prompt = nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	switch g.prompt.Poll() {
	case ui.ChoiceRestart:
		g.Reset()
	case ui.ChoiceQuit:
		return ebiten.Termination
	case ui.ChoiceFailed:
		g.prompt = nil
		g.box.Show(g.statusMessage())
	}

	g.cursorX, g.cursorY = ebiten.CursorPosition()
	x, y := g.cursorX, g.cursorY
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if g.box.Visible() {
		g.box.Hover(x, y)
		if pressed {
			switch g.box.Press(x, y) {
			case ui.ChoiceRestart:
				g.Reset()
			case ui.ChoiceQuit:
				return ebiten.Termination
			}
		}
		g.panel.Update(g.printer)
		return nil
	}

	g.execute.Hover(x, y)
	g.restart.Hover(x, y)
	if pressed {
		switch {
		case g.restart.Press(x, y):
			g.Reset()
		case g.execute.Press(x, y):
			if err := g.apply(); err != nil {
				return err
			}
		default:
			for _, s := range g.sliders {
				if s.Press(x, y) {
					break
				}
			}
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		for _, s := range g.sliders {
			s.Drag(x)
		}
	}
	if released {
		g.execute.Release()
		g.restart.Release()
		for _, s := range g.sliders {
			s.Release()
		}
	}
	g.panel.Update(g.printer)
	return nil
}

func (g *Game) apply() error {
	if g.session.Status().Terminal() || g.prompt != nil {
		return nil
	}
	if _, err := g.session.Apply(ui.PolicyOf(g.sliders)); err != nil {
		return fmt.Errorf("execute policy: %w", err)
	}
	if !g.session.Status().Terminal() {
		return nil
	}
	if g.cfg.Dialogs {
		g.prompt = ui.AskRestart(ui.DialogText{
			Title:   g.printer.Sprintf("dialog.title"),
			Message: g.statusMessage(),
			Restart: g.printer.Sprintf("button.restart"),
			Quit:    g.printer.Sprintf("button.quit"),
		})
		return nil
	}
	g.box.Show(g.statusMessage())
	return nil
}

func (g *Game) statusMessage() string {
	return i18n.StatusMessage(g.printer, g.session.Status(), g.session.State())
}

// Draw renders the whole screen.
func (g *Game) Draw(screen *ebiten.Image) {
	p := g.printer
	cfg := g.session.Config()
	screen.Fill(render.Background)

	title := p.Sprintf("window.title")
	ui.DrawText(screen, title, g.fonts.Title, (ui.ScreenWidth-ui.TextWidth(g.fonts.Title, title))/2, 20, render.Highlight)
	ui.DrawText(screen, p.Sprintf("header.round", g.session.Round()+1, cfg.MaxRounds), g.fonts.Header, 50, 80, render.Text)
	ui.DrawTextRight(screen, p.Sprintf("header.target", cfg.TargetGDP, cfg.MaxDeficit), g.fonts.Normal, ui.ScreenWidth-280, 85, render.Text)

	g.panel.Draw(screen, g.fonts, p.Sprintf("panel.indicators"))
	ui.DrawChart(screen, g.chart, g.fonts, ui.ChartLabels{
		Title:  p.Sprintf("panel.chart"),
		Series: p.Sprintf("chart.gdp"),
		Target: p.Sprintf("chart.target", cfg.TargetGDP),
	}, g.session.Series(economy.GDPOf))

	ui.DrawPanel(screen, ui.TaxRect, p.Sprintf("panel.tax"), g.fonts.Header)
	ui.DrawPanel(screen, ui.SpendingRect, p.Sprintf("panel.spending"), g.fonts.Header)
	for _, s := range g.sliders {
		s.Draw(screen, g.fonts.Small, p.Sprintf(s.Control.Label), i18n.FormatControl(p, s.Control, s.Value))
	}

	g.execute.Draw(screen, g.fonts.Normal, p.Sprintf(g.execute.Label))
	g.restart.Draw(screen, g.fonts.Normal, p.Sprintf(g.restart.Label))

	if g.box.Visible() {
		g.box.Draw(screen, g.fonts, p.Sprintf(g.box.Restart.Label), p.Sprintf(g.box.Quit.Label))
		return
	}
	if g.execute.Hovered() {
		g.execute.DrawHighlight(screen)
		ui.DrawTip(screen, g.fonts.Small, p.Sprintf("tip.execute"), g.cursorX, g.cursorY)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.ScreenWidth, ui.ScreenHeight
}
