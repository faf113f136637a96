// cmd/constellation/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"constellation-defenders/internal/audio"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/state"
	"constellation-defenders/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelsPath := flag.String("levels", "", "YAML file overriding the built-in level table")
	seed := flag.Int64("seed", 0, "PRNG seed for every match (0 = random)")
	mute := flag.Bool("mute", false, "disable sound")
	skipBoot := flag.Bool("skip-boot", false, "start from the menu")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	catalog, err := loadCatalog(*levelsPath)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	var player *audio.Player
	if *mute {
		player = audio.NewPlayerWithSink(audio.NullSink{}, config.AudioVolume)
	} else {
		player = audio.NewPlayer(config.AudioVolume)
	}
	player.Attach(dispatcher)
	defer player.Close()

	ctx := &state.Context{
		Catalog:    catalog,
		Dispatcher: dispatcher,
		Audio:      player,
		Rng:        utils.NewPRNGService(*seed),
		Seed:       *seed,
		Keys:       state.NewKeyboard(),
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipBoot {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		sm.SetState(state.NewBootState(sm, ctx))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth*config.WindowScale, config.ScreenHeight*config.WindowScale)
	ebiten.SetWindowTitle("Constellation Defenders")
	err = ebiten.RunGame(app)
	sm.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

func loadCatalog(path string) (*defs.Catalog, error) {
	if path == "" {
		return defs.DefaultCatalog()
	}
	return defs.LoadCatalog(path)
}
