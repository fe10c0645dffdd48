// Main application window wiring the editor together
package gui

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/catalog"
	"scheduler-node-editor/internal/config"
	"scheduler-node-editor/internal/events"
	"scheduler-node-editor/internal/remote"
	"scheduler-node-editor/internal/server"
)

const schedulerNodeID = 1

// Application is the editor shell: one scheduler node panel plus the
// backend sync status.
type Application struct {
	app      fyne.App
	window   fyne.Window
	logger   *logrus.Logger
	settings *config.Settings

	// Core components
	cat     catalog.Catalog
	bus     *events.Bus
	client  *remote.Client
	backend *server.Server
	factory *Factory

	// GUI components
	behavior    *SchedulerBehavior
	panel       *NodePanel
	statusLabel *widget.Label
}

// NewApplication builds the window, core components and GUI.
func NewApplication(app fyne.App, settings *config.Settings, logger *logrus.Logger) *Application {
	window := app.NewWindow("Scheduler Node Editor")
	window.Resize(fyne.NewSize(900, 600))
	window.CenterOnScreen()

	a := &Application{
		app:      app,
		window:   window,
		logger:   logger,
		settings: settings,
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()

	return a
}

func (a *Application) initializeCore() {
	a.cat = catalog.Default()
	a.bus = events.NewBus(a.logger)

	addr := a.settings.String(config.KeyAPIAddress, "127.0.0.1:8188")
	a.client = remote.NewClient("http://"+addr, a.logger)
	a.backend = server.New(addr, a.bus, a.logger)
	a.factory = NewFactory(a.logger, nil)
}

func (a *Application) initializeGUI() {
	a.behavior = NewSchedulerBehavior(a.cat, a.factory, a.bus, a.client, a.logger)
	a.panel = NewNodePanel(schedulerNodeID, a.cat, a.behavior, a.factory, a.settings, a.logger)
	a.statusLabel = widget.NewLabel("No values requested yet")
	a.statusLabel.Wrapping = fyne.TextWrapWord
}

func (a *Application) setupLayout() {
	requestBtn := widget.NewButton("Request Values", a.onRequestValues)

	statusCard := widget.NewCard("Backend Sync", "",
		container.NewVBox(requestBtn, a.statusLabel))

	split := container.NewHSplit(a.panel.GetContainer(), statusCard)
	split.SetOffset(0.55)

	a.window.SetContent(container.NewPadded(split))
}

// onRequestValues drives the full sync loop: the backend publishes a
// values request for the node, the node's sync handler posts the
// requested widget values back, and the report lands here.
func (a *Application) onRequestValues() {
	n := a.panel.Node()

	needed := make([]string, 0)
	for i, w := range n.Widgets {
		if i >= n.Intrinsic && !w.Hidden() {
			needed = append(needed, w.Name)
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		report, err := a.backend.RequestValues(ctx, n.ID, needed)
		fyne.Do(func() {
			if err != nil {
				a.statusLabel.SetText(fmt.Sprintf("Request failed: %v", err))
				return
			}
			body, _ := json.MarshalIndent(report, "", "  ")
			a.statusLabel.SetText(string(body))
		})
	}()
}

// Run starts the backend server and the settings watcher, then shows
// the window and blocks until it closes.
func (a *Application) Run(ctx context.Context) {
	go func() {
		if err := a.backend.ListenAndServe(ctx); err != nil {
			a.logger.WithError(err).Error("Backend API server stopped")
		}
	}()

	go func() {
		err := a.settings.Watch(ctx, func(s *config.Settings) {
			a.logger.SetLevel(s.LogLevel())
		})
		if err != nil && err != context.Canceled {
			a.logger.WithError(err).Warn("Settings watcher stopped")
		}
	}()

	a.window.ShowAndRun()
}
