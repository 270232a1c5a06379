package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/partscat/internal/config"
	statepkg "github.com/kk-code-lab/partscat/internal/state"
	inputui "github.com/kk-code-lab/partscat/internal/ui/input"
	renderui "github.com/kk-code-lab/partscat/internal/ui/render"
	"github.com/rs/zerolog"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	logger     zerolog.Logger
	openerCmd  []string
	shouldQuit bool

	mouseDown     bool
	lastClickKey  string
	lastClickTime time.Time
}

// NewApplication initialises the terminal and loads the catalogue root.
func NewApplication(settings *config.Settings, logger zerolog.Logger) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so clicks don't leak as key events.
	screen.EnableMouse()

	return newApplication(screen, settings, logger), nil
}

func newApplication(screen tcell.Screen, settings *config.Settings, logger zerolog.Logger) *Application {
	state := statepkg.NewAppState(settings.Root, settings.Extension, settings.HideHidden)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 32)
	state.SetDispatch(func(action statepkg.Action) {
		select {
		case actionCh <- action:
		default:
			go func() { actionCh <- action }()
		}
	})

	openerCmd, ok := detectOpenerCommand(settings.Opener)
	if !ok {
		logger.Warn().Str("opener", settings.Opener).Msg("no document opener found")
	}

	reducer := statepkg.NewStateReducer(logger)
	renderer := renderui.NewRenderer(screen)
	renderer.SetLabels(settings.Title, settings.Columns)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	reducer.Refresh(state)

	return &Application{
		screen:    screen,
		state:     state,
		reducer:   reducer,
		renderer:  renderer,
		input:     inputHandler,
		actionCh:  actionCh,
		logger:    logger,
		openerCmd: openerCmd,
	}
}
