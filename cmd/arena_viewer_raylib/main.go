// cmd/arena_viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"constellation-defenders/internal/app"
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

// toWorld — плоскость арены XZ; ось Y симуляции смотрит в -Z.
func toWorld(p geom.Vec2, height float32) rl.Vector3 {
	return rl.NewVector3(float32(p.X), height, float32(-p.Y))
}

var keys = map[input.Button][]int32{
	input.Up:     {rl.KeyUp},
	input.Down:   {rl.KeyDown},
	input.Left:   {rl.KeyLeft},
	input.Right:  {rl.KeyRight},
	input.Melee:  {rl.KeyZ},
	input.Ranged: {rl.KeyX},
	input.Start:  {rl.KeyA, rl.KeyEnter},
	input.Select: {rl.KeyS},
}

func main() {
	level := flag.Int("level", 0, "level slot 0..5")
	seed := flag.Int64("seed", 0, "PRNG seed (0 = random)")
	levelsPath := flag.String("levels", "", "YAML file overriding the built-in level table")
	flag.Parse()

	var catalog *defs.Catalog
	var err error
	if *levelsPath != "" {
		catalog, err = defs.LoadCatalog(*levelsPath)
	} else {
		catalog, err = defs.DefaultCatalog()
	}
	if err != nil {
		log.Fatal(err)
	}

	cfg := app.DefaultMatchConfig(*level)
	cfg.Seed = *seed
	dispatcher := event.NewDispatcher()
	corpses := app.NewCorpses()
	dispatcher.Subscribe(event.CorpseSpawned, corpses)
	match, err := app.NewMatch(cfg, catalog, dispatcher)
	if err != nil {
		log.Fatal(err)
	}

	// --- Инициализация ---
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255)

	rl.InitWindow(screenWidth, screenHeight, "Constellation Defenders | Q/E - Rotate, Mouse Wheel - Change Angle")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(0, 140, 160)
	topDownPos := rl.NewVector3(0, 260, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(45.0)
	cameraAngleT := float32(0.5)

	clock := app.NewClock(config.FixedStep, config.MaxSubSteps)
	var tracker input.Tracker

	for !rl.WindowShouldClose() {
		// --- Обновление (логика) ---
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}
		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		in := tracker.Next(func(b input.Button) bool {
			for _, k := range keys[b] {
				if rl.IsKeyDown(k) {
					return true
				}
			}
			return false
		})
		dt := float64(rl.GetFrameTime())
		if match.IsPaused() {
			retaliate := match.ECS.GameState.Retaliate
			match.Update(0, in)
			if match.ECS.GameState.Retaliate == retaliate && in.JustPressed(input.Start) {
				match.Resume()
			}
		} else {
			clock.Advance(dt, in, match.Update)
		}
		corpses.Update(dt)
		snap := match.Snapshot()

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		arena := rl.NewColor(config.ArenaColor.R, config.ArenaColor.G, config.ArenaColor.B, 255)
		rl.DrawPlane(rl.NewVector3(0, -0.5, 0), rl.NewVector2(2*config.MechBoundX, 2*config.MechBoundY), arena)

		for _, c := range corpses.Items() {
			fade := 1 - float32(c.Frame)/config.CorpseFrames
			rl.DrawCube(toWorld(c.Position, 0.5), 5, 1, 5, rl.Fade(rl.DarkGray, fade))
		}
		for _, s := range snap.Stars {
			clr := ColorLerp(rl.Gold, rl.Brown, float32(s.Frame)/7)
			rl.DrawSphere(toWorld(s.Position, 4), 3, clr)
		}
		for _, e := range snap.Enemies {
			clr := rl.Red
			if e.Spec == component.SpecB {
				clr = rl.Orange
			}
			rl.DrawCube(toWorld(e.Position, 3), 6, 6, 6, clr)
		}
		for _, b := range snap.Bullets {
			rl.DrawSphere(toWorld(b.Position, 3), 1, rl.SkyBlue)
		}
		for _, b := range snap.Beams {
			w, l := float32(2*config.BeamHalfWide), float32(2*config.BeamHalfLong)
			if !b.Facing.Vertical() {
				w, l = l, w
			}
			alpha := 1 - float32(b.Frame)/config.BeamFrames
			rl.DrawCube(toWorld(b.Position, 1), w, 2, l, rl.Fade(rl.Blue, 0.6*alpha))
		}
		if m := snap.Mech; m != nil {
			clr := rl.RayWhite
			if m.Stunned {
				clr = rl.Gray
			}
			rl.DrawCube(toWorld(m.Position, 5), 10, 10, 10, clr)
			rl.DrawCubeWires(toWorld(m.Position.Add(m.Facing.Unit().Scale(6)), 5), 3, 3, 3, rl.White)
			for _, arc := range m.Arcs {
				if !arc.Active {
					continue
				}
				w, l := float32(2*config.MeleeHalfLong), float32(2*config.MeleeHalfShort)
				if !arc.Facing.Vertical() {
					w, l = l, w
				}
				rl.DrawCubeWires(toWorld(m.Position.Add(arc.Facing.ArcOffset()), 2), w, 4, l, rl.White)
			}
		}

		rl.EndMode3D()

		// --- UI ---
		rl.DrawText(fmt.Sprintf("%s  round %d/%d  charge %.0f  kills %d", snap.LevelName, snap.Round, snap.Cap, snap.Charge, snap.Kills), 10, 10, 20, rl.White)
		if snap.Paused {
			rl.DrawText("PAUSED", screenWidth/2-50, screenHeight/2-10, 30, rl.White)
		}
		if snap.Outcome.Terminal() {
			rl.DrawText(fmt.Sprintf("%s, kills %d", match.Outcome(), match.Kills()), 10, 40, 20, rl.Gold)
		}
		rl.DrawFPS(10, screenHeight-30)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
