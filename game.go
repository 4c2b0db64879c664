package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/blockfall/common"
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
	"github.com/milk9111/blockfall/ecs/entity"
	"github.com/milk9111/blockfall/ecs/render"
	"github.com/milk9111/blockfall/ecs/system"
	"github.com/milk9111/blockfall/prefabs"
	"github.com/milk9111/blockfall/tetromino"
)

type gameState int

const (
	statePlaying gameState = iota
	statePaused
	stateGameOver
)

var backgroundColor = color.NRGBA{R: 0x14, G: 0x14, B: 0x1a, A: 0xff}

type Game struct {
	cfg   *prefabs.Config
	board common.Board
	debug bool

	world   *ecs.World
	physics *ecs.PhysicsWorld
	state   gameState

	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI
	watcher    *prefabs.Watcher

	frames int
	quit   bool
}

func NewGame(cfg *prefabs.Config, debug, watch bool) *Game {
	g := &Game{
		cfg:   cfg,
		board: common.NewBoard(cfg.Board.Lanes, cfg.Board.Rows, cfg.Board.BlockSize),
		debug: debug,
	}
	g.pauseUI = newPauseUI(g)
	g.gameOverUI = newGameOverUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.reset()
	return g
}

// reset rebuilds the world and physics space for a fresh session.
func (g *Game) reset() {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(g.board, g.cfg.Physics)
	w.SetPhysicsWorld(pw)

	if _, err := entity.NewSession(w); err != nil {
		log.Fatalf("setup session: %v", err)
	}
	if err := entity.NewBoard(w); err != nil {
		log.Fatalf("setup board: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewPieceSystem(rng, g.blockImages()))
	w.AddSystem(system.NewLineClearSystem())
	w.AddSystem(system.NewTopOutSystem())
	w.AddSystem(system.NewScoreSystem())
	w.AddSystem(system.NewAudioSystem())
	w.AddSystem(system.NewRenderSystem())

	g.world = w
	g.physics = pw
	g.state = statePlaying
}

func (g *Game) blockImages() map[tetromino.Kind]*ebiten.Image {
	images := make(map[tetromino.Kind]*ebiten.Image, tetromino.KindCount)
	for k := tetromino.Kind(0); int(k) < tetromino.KindCount; k++ {
		c := k.Color()
		if override, ok := g.cfg.Color(k.String()); ok {
			c = override
		}
		images[k] = render.BlockImage(int(g.board.BlockSize), c)
	}
	return images
}

func (g *Game) score() *component.Score {
	sessionEntity, ok := g.world.First(component.ScoreComponent.Kind())
	if !ok {
		return nil
	}
	score, _ := ecs.Get(g.world, sessionEntity, component.ScoreComponent)
	return score
}

// Score returns the session score; the wasm build exports it to the page.
func (g *Game) Score() int {
	if s := g.score(); s != nil {
		return s.Points
	}
	return 0
}

func (g *Game) Update() error {
	if g.quit {
		if g.watcher != nil {
			g.watcher.Close()
		}
		return ebiten.Termination
	}

	g.frames++
	g.pollWatcher()

	switch g.state {
	case statePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = statePaused
			return nil
		}
		g.world.Update()
		if s := g.score(); s != nil && s.GameOver {
			g.state = stateGameOver
		}
	case statePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = statePlaying
			return nil
		}
		g.pauseUI.Update()
	case stateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.reset()
			return nil
		}
		g.gameOverUI.Update()
	}

	return nil
}

// pollWatcher applies edited on-disk tuning while the game runs.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadConfig(path)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("config watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("reload %s: %v", path, err)
		return
	}
	cfg, err := prefabs.ParseConfig(data)
	if err != nil {
		log.Printf("reload %s: %v", path, err)
		return
	}
	if cfg.Board != g.cfg.Board {
		log.Printf("reload %s: board changes need a restart", path)
	}
	g.cfg.Physics = cfg.Physics
	g.physics.ApplyTuning(cfg.Physics)
	log.Printf("reloaded tuning from %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.world.Draw(screen)
	drawHUD(screen, g)

	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}

	switch g.state {
	case statePaused:
		g.pauseUI.Draw(screen)
	case stateGameOver:
		g.gameOverUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.ScreenSize()
}
