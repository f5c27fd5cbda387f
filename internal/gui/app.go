// Package gui provides the raylib window frontend for the maze viewer.
package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mazeviz/internal/anim"
	"github.com/san-kum/mazeviz/internal/config"
	"github.com/san-kum/mazeviz/internal/maze"
	"github.com/san-kum/mazeviz/internal/render"
)

// Run opens the window and drives the animation until the user quits.
// The scene is painted into a render texture: the animator adds or
// erases one segment per accepted tick and the texture is blitted
// every frame, so the host loop never repaints more than it has to.
func Run(mz *maze.Model, cfg *config.Config) {
	layout := cfg.Layout()
	w, h := layout.WindowSize(mz)

	rl.InitWindow(int32(w), int32(h), "mazeviz")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	theme := render.GetTheme(cfg.Theme)
	surface := newSurface(w, h, layout.TileSize, &theme)
	pipe := render.NewPipeline(mz, surface, layout)
	ctrl := anim.NewController(pipe, len(mz.Path), cfg.TickInterval())

	target := rl.LoadRenderTexture(int32(w), int32(h))
	defer rl.UnloadRenderTexture(target)

	paint := func(f func()) {
		rl.BeginTextureMode(target)
		f()
		rl.EndTextureMode()
	}

	paint(func() {
		rl.ClearBackground(toRaylib(theme.Background))
		pipe.RedrawAll(0)
	})

	for !rl.WindowShouldClose() {
		switch {
		case rl.IsKeyPressed(rl.KeyS):
			ctrl.Trigger(time.Now())
		case rl.IsKeyPressed(rl.KeyT):
			theme = render.NextTheme(theme.Name)
			paint(func() { pipe.RedrawAll(ctrl.Progress()) })
		case rl.IsKeyPressed(rl.KeyR):
			ctrl.Reset()
			paint(func() {
				rl.ClearBackground(toRaylib(theme.Background))
				pipe.RedrawAll(0)
			})
		}

		paint(func() { ctrl.Tick(time.Now()) })

		rl.BeginDrawing()
		rl.ClearBackground(toRaylib(theme.Background))
		// render textures are y-flipped; draw with a negative source height
		src := rl.NewRectangle(0, 0, float32(w), -float32(h))
		rl.DrawTextureRec(target.Texture, src, rl.NewVector2(0, 0), rl.White)
		drawOverlay(ctrl, mz)
		rl.EndDrawing()
	}
}

func drawOverlay(ctrl *anim.Controller, mz *maze.Model) {
	text := fmt.Sprintf("%dx%d  %s  %d/%d", mz.Rows(), mz.Cols(), ctrl.State(), ctrl.Progress(), ctrl.PathLen())
	rl.DrawText(text, 8, 8, 10, rl.Gray)
}
