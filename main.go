package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"text-translator/internal/config"
	internalhttp "text-translator/internal/http"
	"text-translator/internal/logger"
	"text-translator/models"
	"text-translator/services"
	"text-translator/tui"
	"text-translator/ui"
	appTheme "text-translator/ui/theme"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	models.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := models.LoadConfig(flags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if cfg.TUI {
		// the terminal is owned by the TUI, so logs go to a file
		logFile, err := openLogFile(cfg.CacheDir)
		if err != nil {
			return err
		}
		defer logFile.Close()
		logger.SetOutput(logFile)
	}

	log := logger.Default()
	httpClient := internalhttp.NewPooledClient(internalhttp.DefaultClientConfig().WithTimeout(cfg.RequestTimeout))

	backend, err := services.NewBackendClient(cfg.BackendURL, httpClient, log)
	if err != nil {
		return err
	}
	player := services.NewExecPlayer(backend.BaseURL(), httpClient, cfg.CacheDir, cfg.AudioPlayer, log)
	metrics := services.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("Using backend %s", cfg.BackendURL)

	if cfg.TUI {
		err = runTUI(ctx, cfg, backend, player, metrics, log)
	} else {
		runGUI(ctx, cfg, backend, player, metrics, log)
	}

	if log.Enabled(logger.LevelDebug) {
		metrics.WriteTo(log.Writer())
	}
	return err
}

func runGUI(ctx context.Context, cfg *models.Config, backend *services.BackendClient, player *services.ExecPlayer, metrics *services.Metrics, log *logger.Logger) {
	a := app.New()
	a.Settings().SetTheme(&appTheme.TranslatorTheme{})

	w := a.NewWindow(config.AppTitle)
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))

	mainUI := ui.NewMainUI(w, cfg)
	controller := services.NewController(backend, backend, player, mainUI, log)
	controller.SetMetrics(metrics)
	mainUI.Bind(ctx, controller)

	w.SetContent(mainUI.Build())

	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	w.ShowAndRun()
}

func runTUI(ctx context.Context, cfg *models.Config, backend *services.BackendClient, player *services.ExecPlayer, metrics *services.Metrics, log *logger.Logger) error {
	bridge := tui.NewBridge()
	controller := services.NewController(backend, backend, player, bridge, log)
	controller.SetMetrics(metrics)
	controller.OnStateChange(bridge.StateChanged)

	p := tea.NewProgram(tui.New(ctx, cfg, controller), tea.WithContext(ctx))
	bridge.Attach(p)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, config.AppName+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
