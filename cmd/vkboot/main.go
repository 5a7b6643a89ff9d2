// Command vkboot brings the full presentation stack up against a real
// window, reports the negotiated configuration and how long construction
// took, then idles until the window is closed.
package main

import (
	"runtime"

	"github.com/gobuffalo/envy"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/bootgfx/vkboot"
	"github.com/bootgfx/vkboot/sdlwin"
)

func init() {
	// SDL and the Vulkan surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	log := logrus.StandardLogger()
	if v, err := logrus.ParseLevel(envy.Get("VKBOOT_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(v)
	}

	cfg := vkboot.ConfigFromEnv()

	window, err := sdlwin.New(cfg.AppName, 800, 600)
	if err != nil {
		log.WithError(err).Fatal("window creation failed")
	}
	defer window.Destroy()

	shaders := vkboot.DirSource{Dir: envy.Get("VKBOOT_SHADER_DIR", "shaders")}

	boot := vkboot.New(cfg, window, shaders)

	start := hrtime.Now()
	if err := boot.Up(); err != nil {
		log.WithError(err).Fatal("bootstrap failed")
	}
	defer boot.Close()

	surfaceCfg := boot.SurfaceConfig()
	log.WithFields(logrus.Fields{
		"elapsed":      hrtime.Since(start),
		"extent":       surfaceCfg.Extent,
		"present_mode": surfaceCfg.PresentMode,
		"image_count":  surfaceCfg.ImageCount,
	}).Info("presentation stack ready")

	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}
		sdl.Delay(16)
	}
}
