// Package app wires the scene, animation and render passes together.
package app

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/prestream/prestream/internal/assets"
	"github.com/prestream/prestream/internal/config"
	"github.com/prestream/prestream/internal/engine/camera"
	"github.com/prestream/prestream/internal/engine/cursor"
	"github.com/prestream/prestream/internal/engine/framebuffer"
	"github.com/prestream/prestream/internal/engine/glyph"
	"github.com/prestream/prestream/internal/engine/input"
	"github.com/prestream/prestream/internal/engine/mesh"
	"github.com/prestream/prestream/internal/engine/post"
	"github.com/prestream/prestream/internal/engine/shadow"
	"github.com/prestream/prestream/internal/engine/texture"
	"github.com/prestream/prestream/internal/engine/window"
	"github.com/prestream/prestream/internal/logger"
	"github.com/prestream/prestream/pkg/math"
	"github.com/prestream/prestream/pkg/obj"
)

const (
	programName = "start_stream"

	// glyph pen origin in pre-aspect clip space
	penOriginX = 0.05
	penOriginY = 0.7

	// shadow map depth texture unit in the lit pass
	shadowMapUnit = 1
)

// clearColor is the window background, a dark terminal gray.
var clearColor = [3]float32{29.0 / 255.0, 31.0 / 255.0, 33.0 / 255.0}

// sceneMesh pairs an uploaded mesh with its model transform.
type sceneMesh struct {
	gpu   *mesh.GpuMesh
	model math.Mat4
}

// App owns every long-lived resource of the start screen and runs the
// frame loop.
type App struct {
	cfg *config.Config

	win *window.Window
	in  *input.Input

	meshRenderer   *mesh.Renderer
	depthRenderer  *mesh.DepthRenderer
	glyphRenderer  *glyph.Renderer
	cursorRenderer *cursor.Renderer
	postRenderer   *post.Renderer

	shadowMap  *shadow.Map
	offscreen  *framebuffer.Framebuffer
	glyphCache *glyph.Cache
	cam        *camera.Orbit

	textures []*texture.Texture
	scene    []sceneMesh

	typist  *typist
	started time.Time
}

// New creates the window, GL resources and scene. Any failure here is
// fatal to startup.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		typist: newTypist(cfg.Text.StepDuration),
	}

	var err error
	a.win, err = window.New(window.Config{
		Title:      "Stream starting...",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	if err := a.initRenderers(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.initScene(); err != nil {
		a.Close()
		return nil, err
	}

	a.in = input.New()
	a.cam = camera.NewOrbit(math.Vec3{Y: 0.5}, 3.2, 1.6, 0.1)

	width, height := a.win.Size()
	a.cam.SetAspect(float32(width) / float32(height))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	logger.Info("scene ready",
		zap.Int("meshes", len(a.scene)),
		zap.Int32("shadow_resolution", cfg.Scene.ShadowResolution),
	)

	return a, nil
}

func (a *App) initRenderers() error {
	var err error

	a.meshRenderer, err = mesh.NewRenderer(assets.MeshVertexShader, assets.MeshFragmentShader)
	if err != nil {
		return err
	}
	a.depthRenderer, err = mesh.NewDepthRenderer(assets.DepthVertexShader, assets.DepthFragmentShader)
	if err != nil {
		return err
	}

	fontData := gomono.TTF
	if a.cfg.Text.FontPath != "" {
		fontData, err = os.ReadFile(a.cfg.Text.FontPath)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
	}
	a.glyphCache, err = glyph.NewCache(fontData, a.cfg.Text.PixelSize)
	if err != nil {
		return err
	}
	a.glyphRenderer, err = glyph.NewRenderer(a.glyphCache, assets.GlyphVertexShader, assets.GlyphFragmentShader)
	if err != nil {
		return err
	}

	a.cursorRenderer, err = cursor.NewRenderer(assets.CursorVertexShader, assets.CursorFragmentShader)
	if err != nil {
		return err
	}
	a.postRenderer, err = post.NewRenderer(assets.PostVertexShader, assets.PostFragmentShader)
	if err != nil {
		return err
	}

	a.shadowMap, err = shadow.New(a.cfg.Scene.ShadowResolution)
	if err != nil {
		return err
	}

	width, height := a.win.Size()
	a.offscreen, err = framebuffer.New(int32(width), int32(height))
	if err != nil {
		return err
	}

	return nil
}

func (a *App) initScene() error {
	monitorTransform := math.Translate(0, 0.08, 0).Mul(math.Scale(1.5, 1.5, 1.5))

	loads := []struct {
		name      string
		objData   []byte
		pngData   []byte
		transform math.Mat4
	}{
		{"table", assets.TableOBJ, assets.TablePNG, math.Identity()},
		{"monitor", assets.MonitorOBJ, assets.MonitorPNG, monitorTransform},
		{"screen", assets.ScreenOBJ, assets.ScreenPNG, monitorTransform},
	}

	for _, l := range loads {
		parsed, err := obj.Parse(bytes.NewReader(l.objData))
		if err != nil {
			return fmt.Errorf("parse %s mesh: %w", l.name, err)
		}
		for _, skipped := range parsed.SkippedTypes {
			logger.Warn("ignoring unrecognized obj line type",
				zap.String("mesh", l.name),
				zap.String("type", skipped),
			)
		}

		tex, err := texture.Load(bytes.NewReader(l.pngData))
		if err != nil {
			return fmt.Errorf("load %s texture: %w", l.name, err)
		}
		a.textures = append(a.textures, tex)

		gpu, err := a.meshRenderer.Upload(parsed, tex.ID)
		if err != nil {
			return fmt.Errorf("upload %s mesh: %w", l.name, err)
		}
		a.scene = append(a.scene, sceneMesh{gpu: gpu, model: l.transform})

		logger.Debug("mesh loaded",
			zap.String("name", l.name),
			zap.Int("vertices", len(parsed.Vertices)),
			zap.Int("indices", len(parsed.Indices)),
		)
	}

	return nil
}

// Run drives the frame loop until the window is closed or escape is
// pressed.
func (a *App) Run() {
	a.started = time.Now()
	last := a.started

	for {
		if quit := a.in.Update(); quit {
			logger.Info("quit requested")
			return
		}
		for _, ev := range a.in.Events() {
			if ev.Type == input.EventResize {
				a.offscreen.Resize(ev.Width, ev.Height)
				a.cam.SetAspect(float32(ev.Width) / float32(ev.Height))
			}
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		a.cam.Advance(dt)

		target := StartingMessage(programName, a.cfg.Stream.Topic, a.cfg.Stream.StartTime, now)
		text := a.typist.Advance(now, target)

		a.render(now, text)
		a.win.SwapBuffers()
	}
}

func (a *App) render(now time.Time, text string) {
	width, height := a.win.Size()
	aspect := float32(width) / float32(height)

	cameraTransform := a.cam.Transform()
	lightDir := math.Vec3{
		X: a.cfg.Scene.LightDir[0],
		Y: a.cfg.Scene.LightDir[1],
		Z: a.cfg.Scene.LightDir[2],
	}.Normalize()
	lightTransform := shadow.LightTransform(lightDir)

	// Pass 1: scene depth from the light's view.
	a.shadowMap.Bind()
	a.depthRenderer.SetLightTransform(lightTransform)
	for _, m := range a.scene {
		a.depthRenderer.SetModelTransform(m.model)
		a.depthRenderer.Draw(m.gpu)
	}
	a.shadowMap.Unbind()

	// Pass 2: lit scene into the offscreen target.
	a.offscreen.Bind()
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.meshRenderer.SetCameraTransform(cameraTransform)
	a.meshRenderer.SetViewToLight(lightTransform.Mul(cameraTransform.Inverse()))
	a.meshRenderer.SetLightDir(lightDir)
	a.meshRenderer.SetLightColor(math.Vec3{
		X: a.cfg.Scene.LightColor[0],
		Y: a.cfg.Scene.LightColor[1],
		Z: a.cfg.Scene.LightColor[2],
	})
	a.meshRenderer.SetShadowMapUnit(shadowMapUnit)
	a.shadowMap.BindTexture(shadowMapUnit)

	for _, m := range a.scene {
		a.meshRenderer.SetModelTransform(m.model)
		a.meshRenderer.Draw(m.gpu)
	}

	// Pass 3: text over the scene, still offscreen so the postprocess
	// covers it too.
	gl.Disable(gl.DEPTH_TEST)
	penX, penY := a.glyphRenderer.RenderString(text, penOriginX, penOriginY, aspect)

	// Pass 4: blinking cursor at the final pen position.
	if a.cursorVisible(now) {
		cursorHeight := 0.6 * a.glyphRenderer.LineHeight()
		a.cursorRenderer.Draw(penX, penY, cursorHeight/2, cursorHeight, aspect)
	}
	gl.Enable(gl.DEPTH_TEST)
	a.offscreen.Unbind()

	// Pass 5: postprocess to the window.
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	elapsed := float32(now.Sub(a.started).Seconds())
	a.postRenderer.Draw(a.offscreen.ColorTexture(), elapsed, aspect)
}

// cursorVisible toggles on a fixed period independent of the animation.
func (a *App) cursorVisible(now time.Time) bool {
	period := a.cfg.Text.CursorBlink
	if period <= 0 {
		return true
	}
	return (now.Sub(a.started)/period)%2 == 0
}

// Close releases every GL resource and the window. Safe to call on a
// partially constructed App.
func (a *App) Close() {
	for _, m := range a.scene {
		m.gpu.Destroy()
	}
	for _, t := range a.textures {
		t.Destroy()
	}
	if a.glyphCache != nil {
		a.glyphCache.Destroy()
	}
	if a.offscreen != nil {
		a.offscreen.Destroy()
	}
	if a.shadowMap != nil {
		a.shadowMap.Destroy()
	}
	if a.postRenderer != nil {
		a.postRenderer.Destroy()
	}
	if a.cursorRenderer != nil {
		a.cursorRenderer.Destroy()
	}
	if a.glyphRenderer != nil {
		a.glyphRenderer.Destroy()
	}
	if a.depthRenderer != nil {
		a.depthRenderer.Destroy()
	}
	if a.meshRenderer != nil {
		a.meshRenderer.Destroy()
	}
	if a.win != nil {
		a.win.Close()
	}
}
