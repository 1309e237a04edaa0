package game

import "fmt"

// Text screens and the in-run HUD. All coordinates live in the
// 160x120 pixel space; the frontends scale the whole canvas.

func (g *Game) drawMenu(r Renderer) {
	w, h := r.Size()
	title := "BEAT SURVIVOR"
	r.Text(w/2-textWidth(title)/2, h/2-24, title, ColYellow)
	msg := "PRESS SPACE"
	r.Text(w/2-textWidth(msg)/2, h/2+4, msg, ColWhite)
	if g.HighScore > 0 {
		hi := fmt.Sprintf("BEST %d", g.HighScore)
		r.Text(w/2-textWidth(hi)/2, h/2+16, hi, ColGray)
	}
}

func (g *Game) drawWorld(r Renderer) {
	g.Player.Draw(r)
	g.Enemies.Draw(r)
	g.FX.Draw(r)
}

func (g *Game) drawHUD(r Renderer) {
	r.Text(4, 4, fmt.Sprintf("HP: %d", int(g.Player.HP.Current)), HealthColor(g.Player.HP.Fraction()))
	r.Text(4, 12, fmt.Sprintf("LEVEL: %d", g.Player.Level), ColWhite)
	r.Text(4, 20, fmt.Sprintf("EXP: %d/%d", g.Player.Exp, g.Player.ExpToLevel), ColWhite)
	r.Text(4, 28, fmt.Sprintf("SCORE: %d", g.Score), ColWhite)
	r.Text(4, 36, fmt.Sprintf("ENEMIES: %d", g.Enemies.Count()), ColWhite)

	// Top-right: run clock.
	secs := g.Frames / TickRate
	clock := fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	w, _ := r.Size()
	r.Text(w-textWidth(clock)-4, 4, clock, ColGray)
}

// drawLevelUpModal covers the world with the choice list; the HUD is
// drawn back on top by the caller.
func (g *Game) drawLevelUpModal(r Renderer) {
	w, h := r.Size()
	r.Rect(0, 0, w, h, ColNavy)

	title := "LEVEL UP"
	top := h/2 - len(g.Options)*4
	r.Text(w/2-textWidth(title)/2, top-14, title, ColYellow)
	for i, opt := range g.Options {
		label := opt.Label()
		col := ColGray
		if i == g.Selected {
			col = ColWhite
		}
		r.Text(w/2-textWidth(label)/2, top+i*8, label, col)
	}
}

func (g *Game) drawGameOver(r Renderer) {
	w, h := r.Size()
	title := "GAME OVER"
	r.Text(w/2-textWidth(title)/2, h/2-20, title, ColRed)
	score := fmt.Sprintf("SCORE %d", g.Score)
	r.Text(w/2-textWidth(score)/2, h/2-4, score, ColWhite)
	hi := fmt.Sprintf("BEST %d", g.HighScore)
	r.Text(w/2-textWidth(hi)/2, h/2+8, hi, ColYellow)
	msg := "PRESS SPACE"
	r.Text(w/2-textWidth(msg)/2, h/2+24, msg, ColGray)
}
