package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"creature-engine/internal/appconfig"
	"creature-engine/internal/ar"
	"creature-engine/internal/creature"
	"creature-engine/internal/debug"
	"creature-engine/internal/diag"
	"creature-engine/internal/env"
	"creature-engine/internal/graphics"
	"creature-engine/internal/model"
	"creature-engine/internal/scene"
)

// groundDetectDelay simulates plane-detection latency: anchors fail until this
// many seconds have passed, so early spawns stay unanchored (and still load).
const groundDetectDelay = 1.0

// spawnDistance is how far in front of the camera creatures appear, in meters.
const spawnDistance = 2.5

// spawnKeys: number keys 1..4 spawn the catalog creatures in sorted-id order.
var spawnKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour}

func main() {
	_ = env.Load(".env")
	prefs, _ := appconfig.Load()

	assetDir := env.Get(env.AssetDirVar, prefs.AssetDir)
	if assetDir == "" {
		assetDir = creature.DefaultBaseDir
	}
	if url := env.Get(env.ModelPackURLVar, ""); url != "" {
		models, err := fetchModelPack(url, assetDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "model pack: %v\n", err)
		} else {
			fmt.Printf("model pack: %d model(s) in %s\n", len(models), assetDir)
		}
	}

	log := diag.NewLog(diag.LogFilePath)
	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)
	scn.ShowColliders = prefs.ShowColliders

	loader, err := creature.NewLoader(scn, model.NewLoader(), creature.Options{
		BaseDir:     assetDir,
		CatalogPath: prefs.CatalogPath,
		Anchors:     scn,
		Sink:        log,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	overlay := debug.New(scn.ObjectCount)
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowMem = prefs.ShowMemAlloc
	overlay.ShowObjects = prefs.ShowObjects

	ids := loader.ListAvailableCreatures()
	fmt.Printf("creatures: %v\n", ids)

	var elapsed float32
	groundSet := false

	update := func(dt float32) {
		elapsed += dt
		if !groundSet && elapsed >= groundDetectDelay {
			scn.SetGroundPlane(0)
			groundSet = true
		}
		scn.Update(dt)

		for i, key := range spawnKeys {
			if i >= len(ids) {
				break
			}
			if rl.IsKeyPressed(key) {
				if _, err := loader.LoadCreature(ids[i], spawnPoint(scn), creature.SpawnOptions{}); err != nil {
					fmt.Fprintf(os.Stderr, "load %s: %v\n", ids[i], err)
				}
			}
		}
		// U spawns an unknown id: shows the placeholder fallback.
		if rl.IsKeyPressed(rl.KeyU) {
			if _, err := loader.LoadCreature("missingno", spawnPoint(scn), creature.SpawnOptions{}); err != nil {
				fmt.Fprintf(os.Stderr, "fallback: %v\n", err)
			}
		}
		if rl.IsKeyPressed(rl.KeyC) {
			scn.ShowColliders = !scn.ShowColliders
		}
		// Click unloads the creature in the crosshair (cursor is captured for
		// the camera, so picking uses the screen center).
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			center := rl.NewVector2(float32(rl.GetScreenWidth())/2, float32(rl.GetScreenHeight())/2)
			if obj, ok := scn.PickAt(center); ok {
				loader.UnloadCreature(obj)
			}
		}
	}

	draw := func() {
		scn.Draw()
		overlay.Draw()
	}

	graphics.Run(update, draw)

	// Persist toggles changed during the session.
	prefs.ShowColliders = scn.ShowColliders
	if err := appconfig.Save(prefs); err != nil {
		fmt.Fprintf(os.Stderr, "save prefs: %v\n", err)
	}
}

// spawnPoint returns a ground-level point spawnDistance in front of the camera.
func spawnPoint(s *scene.Scene) ar.Vector3 {
	fwd := rl.Vector3Normalize(rl.Vector3Subtract(s.Camera.Target, s.Camera.Position))
	p := rl.Vector3Add(s.Camera.Position, rl.Vector3Scale(fwd, spawnDistance))
	return ar.NewVector3(p.X, 0, p.Z)
}
