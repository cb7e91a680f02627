package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/iOliverNguyen/rustapps/internal/app"
	"github.com/iOliverNguyen/rustapps/internal/cli"
	"github.com/iOliverNguyen/rustapps/internal/library"
	"github.com/iOliverNguyen/rustapps/internal/render"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("UICOLORS_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(application *app.App, fps float64) string {
	if fps <= 0 {
		return application.Title()
	}
	return fmt.Sprintf("%s (%.0f FPS)", application.Title(), fps)
}

func main() {
	if err := cli.NewRootCommand(runWindow).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runWindow(ctx context.Context, s cli.Session) error {
	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(s.Config.Window.Width, s.Config.Window.Height, "uicolors", nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	application := app.New(s.Config, s.Color, s.Library, s.Seed)
	defer application.Close()
	renderer := render.NewRenderer()
	defer renderer.Delete()

	// Timer-driven status fades and library reloads happen off the main
	// thread; wake the loop so the title catches up.
	application.Status.OnChange(glfw.PostEmptyEvent)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if lc := s.Config.Library; lc.Watch && lc.Path != "" {
		go func() {
			err := library.Watch(ctx, lc.Path, func(lib *library.Library, err error) {
				application.QueueLibrary(lib, err)
				glfw.PostEmptyEvent()
			})
			if err != nil {
				log.Printf("WARNING: not watching %s: %v", lc.Path, err)
			}
		}()
	}

	eventHandlers := NewEventHandlers(application, window, renderer)
	eventHandlers.handleResize()

	frameCount, fps := 0, 0.0
	lastFPSUpdate := time.Now()
	title := ""

	// Main loop.
	for !window.ShouldClose() {
		application.ApplyPendingLibrary()

		renderer.Begin()
		application.Paint(renderer)
		renderer.End()
		window.SwapBuffers()

		frameCount++
		now := time.Now()
		if elapsed := now.Sub(lastFPSUpdate); elapsed >= time.Second {
			fps = float64(frameCount) / elapsed.Seconds()
			frameCount = 0
			lastFPSUpdate = now

			stats := renderer.Stats()
			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS (%d draw calls/frame, %d triangles/frame)", fps, stats.DrawCallsPerFrame, stats.TrianglesPerFrame)
			runtimeLogger.Printf("Render time:    %.2f µs (last draw)", stats.LastDrawTimeUs)
			runtimeLogger.Printf("Textures:       %d resident (%.1f KiB), %d uploads, %d evictions",
				stats.Textures.Resident, float64(stats.Textures.ResidentBytes)/1024.0, stats.Textures.Uploads, stats.Textures.Evictions)
			runtimeLogger.Println("==============================")
		}

		if t := makeTitle(application, fps); t != title {
			window.SetTitle(t)
			title = t
		}

		// Nothing animates on its own, so sleep until input or a wake-up.
		glfw.WaitEventsTimeout(1)
	}
	return nil
}
