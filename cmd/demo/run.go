package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"shading-lab/config"
	"shading-lab/core"
	"shading-lab/renderer"
	"shading-lab/scenes"
	"shading-lab/textures"
)

func newRunCmd(cfgPath *string) *cobra.Command {
	var sceneFlag int
	var shadingFlag string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the window and render the scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scene") {
				cfg.Render.Scene = sceneFlag
			}
			if cmd.Flags().Changed("shading") {
				if err := cfg.Render.Shading.UnmarshalText([]byte(shadingFlag)); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().IntVar(&sceneFlag, "scene", 0, "initial scene (0-2)")
	cmd.Flags().StringVar(&shadingFlag, "shading", "gouraud", "initial shading algorithm (gouraud|phong)")
	return cmd
}

// newController assembles the scenes and applies the initial selection from r.
func newController(baseURL string, r config.Render, opts scenes.Options) (*scenes.Controller, error) {
	if opts.Textures == nil {
		opts.Textures = textures.NewLoader(baseURL)
	}
	ctrl, err := scenes.New(scenes.Definitions(), opts)
	if err != nil {
		return nil, fmt.Errorf("assemble scenes: %w", err)
	}
	if err := ctrl.SetActiveScene(r.Scene); err != nil {
		return nil, err
	}
	if err := ctrl.SetShadingAlgorithm(r.Shading); err != nil {
		return nil, err
	}
	ctrl.SetHeightScale(r.HeightScale)
	return ctrl, nil
}

func run(cfg config.Config) error {
	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	engine, err := renderer.NewRenderEngine(window)
	if err != nil {
		return err
	}
	defer engine.Destroy()

	ctrl, err := newController(cfg.BaseURL, cfg.Render, scenes.Options{})
	if err != nil {
		return err
	}
	for _, ctx := range ctrl.Scenes() {
		if err := engine.Prepare(ctx); err != nil {
			return err
		}
	}

	keys := demoKeys{ctrl: ctrl, quit: window.Close}
	window.SetKeyCallback(keys.HandleKey)

	fbw, fbh := window.GetFramebufferSize()
	engine.Resize(fbw, fbh, ctrl.Scenes()...)

	title := ""
	for !window.ShouldClose() {
		window.PollEvents()

		if w, h := window.GetFramebufferSize(); w != fbw || h != fbh {
			fbw, fbh = w, h
			engine.Resize(fbw, fbh, ctrl.Scenes()...)
		}

		ctx := ctrl.ActiveContext()
		if t := windowTitle(cfg.Window.Title, ctx, ctrl.State()); t != title {
			title = t
			window.SetTitle(title)
		}

		if err := engine.Render(ctx); err != nil {
			return fmt.Errorf("render %s: %w", ctx.Scene.Name, err)
		}
		engine.Present()
	}

	objects, triangles := engine.DrawStats()
	slog.Info("demo closed", "objects", objects, "triangles", triangles)
	return nil
}

func windowTitle(base string, ctx *scenes.SceneContext, st scenes.RenderState) string {
	return fmt.Sprintf("%s - %s [%s, light %d, height %.2f]",
		base, ctx.Scene.Name, st.Algorithm, st.ActiveLight, ctx.Ground.Binding.Ground.HeightScale)
}
