package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/control"
	"github.com/ja-he/memeplan/internal/control/action"
	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/input"
	"github.com/ja-he/memeplan/internal/input/processors"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/potatolog"
	"github.com/ja-he/memeplan/internal/session"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/tui"
	"github.com/ja-he/memeplan/internal/ui"
	"github.com/ja-he/memeplan/internal/ui/panes"
)

const (
	// nudgeStep and fineNudgeStep are how far (in template units) a layer is
	// moved per nudge.
	nudgeStep     = 10.0
	fineNudgeStep = 1.0

	fontSizeStep = 2.0
	zoomFactor   = 1.2
	filterStep   = 10.0

	// newTextX and newTextY are where new text layers are placed, in template
	// units.
	newTextX = 50.0
	newTextY = 50.0

	layersPaneWidth     = 30
	propertiesPaneWidth = 34
)

// globalActions are bound on the root pane rather than on the editor, so
// they stay available regardless of what the editor is doing.
var globalActions = map[input.Actionspec]bool{
	"toggle-help": true,
	"toggle-log":  true,
	"quit":        true,
}

// Controller is the struct for the TUI controller.
type Controller struct {
	data     *control.ControlData
	rootPane *panes.RootPane

	session  *session.Session
	ref      *draftRef
	defaults editor.LayerDefaults

	editorKeys *input.Tree
	rootKeys   *input.Tree

	prompt           *panes.PromptPane
	promptLabel      string
	promptRenderer   ui.ConstrainedRenderer
	promptDimensions func() (x, y, w, h int)
	stylesheet       *styling.Stylesheet
	cursorWrangler   *ui.CursorWrangler

	nudgingLayer string

	controllerEvents chan controllerEvent
	// closed once the render loop has returned
	done chan struct{}

	screenEvents      tui.EventPollable
	initializedScreen *tui.ScreenHandler
	syncer            tui.ScreenSynchronizer
}

// NewController creates a new Controller editing the given session, which
// saves to the given draft reference.
func NewController(
	ref *draftRef,
	s *session.Session,
	stylesheet *styling.Stylesheet,
	screenHandler *tui.ScreenHandler,
) (*Controller, error) {
	controller := &Controller{
		data:             control.NewControlData(ref.env.envData),
		session:          s,
		ref:              ref,
		defaults:         ref.env.config.LayerDefaults(),
		controllerEvents: make(chan controllerEvent, 32),
		done:             make(chan struct{}),

		screenEvents:      screenHandler.GetEventPollable(),
		initializedScreen: screenHandler,
		syncer:            screenHandler,
	}

	editorBindings, rootBindings := input.Bindings{}, input.Bindings{}
	for spec, name := range input.BindingsFromConfig(ref.env.config.Keys) {
		if globalActions[name] {
			rootBindings[spec] = name
		} else {
			editorBindings[spec] = name
		}
	}
	registry := controller.actionRegistry()
	var err error
	controller.editorKeys, err = input.ConstructInputTreeFromBindings(editorBindings, registry)
	if err != nil {
		return nil, fmt.Errorf("could not construct editor key bindings (%w)", err)
	}
	controller.rootKeys, err = input.ConstructInputTreeFromBindings(rootBindings, registry)
	if err != nil {
		return nil, fmt.Errorf("could not construct global key bindings (%w)", err)
	}

	helpKeys, err := controller.overlayKeys(rootBindings, "toggle-help", func() { controller.data.ShowHelp = false })
	if err != nil {
		return nil, err
	}
	logKeys, err := controller.overlayKeys(rootBindings, "toggle-log", func() { controller.data.ShowLog = false })
	if err != nil {
		return nil, err
	}

	screenDimensions := func() (x, y, w, h int) { return screenHandler.Dimensions() }
	renderer := func(dims func() (x, y, w, h int)) ui.ConstrainedRenderer {
		return ui.NewConstrainedRenderer(screenHandler, dims)
	}

	statusDimensions := func() (x, y, w, h int) {
		sx, sy, sw, sh := screenDimensions()
		return sx, sy + sh - 1, sw, 1
	}
	promptDimensions := func() (x, y, w, h int) {
		sx, sy, sw, sh := screenDimensions()
		return sx, sy + sh - 2, sw, 1
	}
	layersDimensions := func() (x, y, w, h int) {
		sx, sy, sw, sh := screenDimensions()
		return sx, sy, min(layersPaneWidth, sw), max(sh-1, 0)
	}
	propertiesDimensions := func() (x, y, w, h int) {
		sx, sy, sw, sh := screenDimensions()
		w = min(propertiesPaneWidth, max(sw-layersPaneWidth, 0))
		return sx + sw - w, sy, w, max(sh-1, 0)
	}
	canvasDimensions := func() (x, y, w, h int) {
		sx, sy, sw, sh := screenDimensions()
		return sx + layersPaneWidth, sy, max(sw-layersPaneWidth-propertiesPaneWidth, 0), max(sh-1, 0)
	}

	state := s.State

	layersPane := panes.NewLayersPane(renderer(layersDimensions), layersDimensions, stylesheet, state)
	canvasPane := panes.NewCanvasPane(renderer(canvasDimensions), canvasDimensions, stylesheet, state)
	propertiesPane := panes.NewPropertiesPane(renderer(propertiesDimensions), propertiesDimensions, stylesheet, state)
	statusPane := panes.NewStatusPane(
		renderer(statusDimensions), statusDimensions, stylesheet,
		state,
		s.HistoryDepth,
		controller.mode,
		controller.pendingKeys,
		controller.data.Message,
	)

	editorPane := panes.NewWrapperPane(
		[]ui.Pane{canvasPane, layersPane, propertiesPane, statusPane},
		[]ui.Pane{canvasPane},
		processors.NewModalInputProcessor(controller.editorKeys),
	)

	helpPane := panes.NewHelpPane(
		renderer(screenDimensions), screenDimensions, stylesheet,
		func() bool { return controller.data.ShowHelp },
		controller.help,
		processors.NewModalInputProcessor(helpKeys),
	)
	logPane := panes.NewLogPane(
		renderer(screenDimensions), screenDimensions, stylesheet,
		func() bool { return controller.data.ShowLog },
		func() string { return "log" },
		potatolog.GlobalMemoryLogReaderWriter,
		processors.NewModalInputProcessor(logKeys),
	)

	controller.cursorWrangler = ui.NewCursorWrangler(screenHandler)
	controller.rootPane = panes.NewRootPane(
		screenHandler,
		controller.cursorWrangler,
		screenDimensions,
		editorPane,
		logPane,
		helpPane,
		processors.NewModalInputProcessor(controller.rootKeys),
	)

	controller.promptDimensions = promptDimensions
	controller.promptRenderer = renderer(promptDimensions)
	controller.stylesheet = stylesheet

	return controller, nil
}

// overlayKeys returns the keys closing an overlay: the keys the overlay's
// toggle is bound to plus <esc> and q.
func (c *Controller) overlayKeys(rootBindings input.Bindings, toggle input.Actionspec, onClose func()) (*input.Tree, error) {
	closeAction := action.NewSimple(func() string { return "close" }, onClose)
	spec := map[input.Keyspec]action.Action{
		"<esc>": closeAction,
		"q":     closeAction,
	}
	for keyspec, name := range rootBindings {
		if name == toggle {
			spec[keyspec] = closeAction
		}
	}
	tree, err := input.ConstructInputTree(spec)
	if err != nil {
		return nil, fmt.Errorf("could not construct keys for '%s' overlay (%w)", toggle, err)
	}
	return tree, nil
}

func (c *Controller) help() input.Help {
	result := input.Help{}
	for k, v := range c.editorKeys.GetHelp() {
		result[k] = v
	}
	for k, v := range c.rootKeys.GetHelp() {
		result[k] = v
	}
	return result
}

func (c *Controller) mode() string {
	if c.prompt != nil {
		return c.promptLabel
	}
	return ""
}

func (c *Controller) pendingKeys() string {
	return c.rootKeys.Pending() + c.editorKeys.Pending()
}

// actionRegistry maps each action name usable in the key config to its
// action.
func (c *Controller) actionRegistry() map[input.Actionspec]action.Action {
	s := c.session

	// dispatching wraps an editor action builder, ending any ongoing nudge
	// before it runs.
	dispatching := func(explain string, build func(model.EditorState) (editor.Action, bool)) action.Action {
		return action.NewDispatching(&gestureEndingDispatcher{c}, explain, build)
	}
	onActive := func(explain string, build func(model.Layer) editor.Action) action.Action {
		return dispatching(explain, func(st model.EditorState) (editor.Action, bool) {
			l, ok := st.ActiveLayer()
			if !ok {
				log.Debug().Str("action", explain).Msg("no active layer")
				return nil, false
			}
			return build(l), true
		})
	}
	simple := func(explain string, do func()) action.Action {
		return action.NewSimple(func() string { return explain }, func() {
			c.endNudge()
			do()
		})
	}
	nudge := func(explain string, dx, dy float64) action.Action {
		return action.NewSimple(func() string { return explain }, func() { c.nudge(dx, dy) })
	}
	filter := func(explain string, update func(model.Filters) model.FilterUpdate) action.Action {
		return dispatching(explain, func(st model.EditorState) (editor.Action, bool) {
			return editor.SetFilter{Update: update(st.Filters)}, true
		})
	}
	font := func(explain string, delta float64) action.Action {
		return dispatching(explain, func(st model.EditorState) (editor.Action, bool) {
			l, ok := st.ActiveLayer()
			if !ok || l.Properties.TextProperties == nil {
				return nil, false
			}
			size := max(l.Properties.TextProperties.FontSize+delta, 1)
			return editor.UpdateLayer{ID: l.ID, Update: model.LayerUpdate{Properties: &model.PropertiesUpdate{FontSize: &size}}}, true
		})
	}

	return map[input.Actionspec]action.Action{
		"undo": simple("undo", func() {
			if !s.Undo() {
				c.data.Notify("nothing to undo")
			}
		}),
		"redo": simple("redo", func() {
			if !s.Redo() {
				c.data.Notify("nothing to redo")
			}
		}),

		"add-text":  simple("add a text layer", c.addText),
		"edit-text": simple("edit the active text layer's content", c.editText),
		"delete-layer": onActive("delete the active layer", func(l model.Layer) editor.Action {
			return editor.DeleteLayer{ID: l.ID}
		}),

		"next-layer": dispatching("activate the next layer down", func(st model.EditorState) (editor.Action, bool) {
			return cycleActive(st, -1)
		}),
		"prev-layer": dispatching("activate the next layer up", func(st model.EditorState) (editor.Action, bool) {
			return cycleActive(st, +1)
		}),
		"deactivate": dispatching("deactivate all layers", func(st model.EditorState) (editor.Action, bool) {
			return editor.SetActiveLayer{ID: ""}, st.CountActive() > 0
		}),
		"raise": onActive("raise the active layer", func(l model.Layer) editor.Action {
			return editor.ReorderLayers{ID: l.ID, Direction: editor.Up}
		}),
		"lower": onActive("lower the active layer", func(l model.Layer) editor.Action {
			return editor.ReorderLayers{ID: l.ID, Direction: editor.Down}
		}),
		"toggle-visible": onActive("toggle the active layer's visibility", func(l model.Layer) editor.Action {
			return editor.ToggleLayerVisibility{ID: l.ID}
		}),
		"toggle-lock": onActive("toggle the active layer's lock", func(l model.Layer) editor.Action {
			return editor.ToggleLayerLock{ID: l.ID}
		}),

		"nudge-left":       nudge("move the active layer left", -nudgeStep, 0),
		"nudge-right":      nudge("move the active layer right", nudgeStep, 0),
		"nudge-up":         nudge("move the active layer up", 0, -nudgeStep),
		"nudge-down":       nudge("move the active layer down", 0, nudgeStep),
		"nudge-left-fine":  nudge("move the active layer left slightly", -fineNudgeStep, 0),
		"nudge-right-fine": nudge("move the active layer right slightly", fineNudgeStep, 0),
		"nudge-up-fine":    nudge("move the active layer up slightly", 0, -fineNudgeStep),
		"nudge-down-fine":  nudge("move the active layer down slightly", 0, fineNudgeStep),
		"font-grow":        font("grow the active text layer's font", fontSizeStep),
		"font-shrink":      font("shrink the active text layer's font", -fontSizeStep),

		"zoom-in": dispatching("zoom in", func(st model.EditorState) (editor.Action, bool) {
			return editor.SetZoom{Value: st.Zoom * zoomFactor}, true
		}),
		"zoom-out": dispatching("zoom out", func(st model.EditorState) (editor.Action, bool) {
			return editor.SetZoom{Value: st.Zoom / zoomFactor}, true
		}),
		"reset-view": simple("reset zoom and pan", func() {
			s.Begin()
			s.Dispatch(editor.SetZoom{Value: model.DefaultZoom})
			s.Dispatch(editor.SetPan{X: 0, Y: 0})
			s.Commit()
		}),

		"brightness-up": filter("increase brightness", func(f model.Filters) model.FilterUpdate {
			return model.FilterUpdate{Brightness: model.Pointer(f.Brightness + filterStep)}
		}),
		"brightness-down": filter("decrease brightness", func(f model.Filters) model.FilterUpdate {
			return model.FilterUpdate{Brightness: model.Pointer(f.Brightness - filterStep)}
		}),
		"contrast-up": filter("increase contrast", func(f model.Filters) model.FilterUpdate {
			return model.FilterUpdate{Contrast: model.Pointer(f.Contrast + filterStep)}
		}),
		"contrast-down": filter("decrease contrast", func(f model.Filters) model.FilterUpdate {
			return model.FilterUpdate{Contrast: model.Pointer(f.Contrast - filterStep)}
		}),
		"reset-filters": dispatching("reset filters", func(st model.EditorState) (editor.Action, bool) {
			return editor.ResetFilters{}, !st.Filters.IsIdentity()
		}),

		"save-draft": simple(fmt.Sprintf("save to %s", c.ref), c.save),
		"toggle-log": simple("toggle the log", func() {
			c.data.ShowLog = !c.data.ShowLog
		}),
		"toggle-help": simple("toggle this help", func() {
			c.data.ShowHelp = !c.data.ShowHelp
		}),
		"quit": simple("exit program (unsaved progress is lost)", func() {
			c.controllerEvents <- controllerEventExit
		}),
	}
}

// gestureEndingDispatcher ends an ongoing nudge gesture before dispatching.
type gestureEndingDispatcher struct{ c *Controller }

func (d *gestureEndingDispatcher) State() model.EditorState { return d.c.session.State() }
func (d *gestureEndingDispatcher) Dispatch(a editor.Action) bool {
	d.c.endNudge()
	return d.c.session.Dispatch(a)
}

// cycleActive activates the layer offset positions from the active one,
// wrapping around the stack. Absent an active layer, moving down starts at
// the top and moving up at the bottom.
func cycleActive(st model.EditorState, offset int) (editor.Action, bool) {
	n := len(st.ActiveLayers)
	if n == 0 {
		return nil, false
	}
	var next int
	active, ok := st.ActiveLayer()
	switch {
	case !ok && offset < 0:
		next = n - 1
	case !ok:
		next = 0
	default:
		next = ((st.LayerIndex(active.ID)+offset)%n + n) % n
	}
	return editor.SetActiveLayer{ID: st.ActiveLayers[next].ID}, true
}

// nudge moves the active layer. Consecutive nudges of the same layer form a
// single undo step, which ends with the next other action.
func (c *Controller) nudge(dx, dy float64) {
	st := c.session.State()
	l, ok := st.ActiveLayer()
	if !ok {
		log.Debug().Msg("no active layer to nudge")
		return
	}
	if l.Properties.Locked {
		c.data.Notify("layer is locked")
		return
	}

	if c.nudgingLayer != l.ID {
		c.endNudge()
		c.session.Begin()
		c.nudgingLayer = l.ID
	}
	x, y := l.Properties.X+dx, l.Properties.Y+dy
	c.session.Dispatch(editor.UpdateLayer{
		ID:     l.ID,
		Update: model.LayerUpdate{Properties: &model.PropertiesUpdate{X: &x, Y: &y}},
	})
}

func (c *Controller) endNudge() {
	if c.nudgingLayer == "" {
		return
	}
	c.nudgingLayer = ""
	if c.session.InGesture() {
		c.session.Commit()
	}
}

func (c *Controller) addText() {
	if c.session.State().SelectedTemplate == nil {
		c.data.NotifyError("select a template before adding text")
		return
	}
	c.openPrompt("new text", "", func(content string) {
		if content == "" {
			return
		}
		layer := model.NewTextLayer(content, newTextX, newTextY, c.defaults.Text)
		layer.IsActive = true
		if _, ok := c.session.AddLayer(layer); !ok {
			log.Warn().Str("content", content).Msg("could not add text layer")
		}
	})
}

func (c *Controller) editText() {
	l, ok := c.session.State().ActiveLayer()
	if !ok || l.Type != model.LayerTypeText {
		c.data.NotifyError("no active text layer")
		return
	}
	if l.Properties.Locked {
		c.data.Notify("layer is locked")
		return
	}
	id := l.ID
	c.openPrompt("edit text", l.Content, func(content string) {
		c.session.Dispatch(editor.UpdateLayer{ID: id, Update: model.LayerUpdate{Content: &content}})
	})
}

// openPrompt shows a text prompt; submit is called with the entered text on
// <cr>, <esc> cancels.
func (c *Controller) openPrompt(label string, initial string, submit func(string)) {
	if c.prompt != nil {
		log.Warn().Str("label", label).Msg("prompt already open, ignoring request")
		return
	}

	var textInput *processors.TextInputProcessor
	textInput, err := processors.NewTextInputProcessor(
		map[input.Keyspec]action.Action{
			"<cr>": action.NewSimple(func() string { return "submit" }, func() {
				text := textInput.Text()
				c.closePrompt()
				submit(text)
			}),
			"<esc>": action.NewSimple(func() string { return "cancel" }, c.closePrompt),
		},
		initial,
	)
	if err != nil {
		log.Error().Err(err).Msg("could not construct prompt")
		return
	}

	c.prompt = panes.NewPromptPane(c.promptRenderer, c.promptDimensions, c.stylesheet, label, textInput, c.cursorWrangler)
	c.promptLabel = label
	c.rootPane.PushSubpane(c.prompt)
}

func (c *Controller) closePrompt() {
	if c.prompt == nil {
		return
	}
	c.prompt.Close()
	c.rootPane.PopSubpane()
	c.prompt = nil
	c.promptLabel = ""
}

// save writes the current state to the draft reference in the background.
func (c *Controller) save() {
	c.session.Dispatch(editor.SetLoading{Loading: true})
	go func() {
		err := c.ref.save(context.Background(), c.session)
		if err != nil {
			log.Error().Err(err).Stringer("draft", c.ref).Msg("could not save")
			c.session.Dispatch(editor.SetError{Message: err.Error()})
			c.data.NotifyError("save failed")
		} else {
			log.Info().Stringer("draft", c.ref).Msg("saved")
			c.session.Dispatch(editor.SetLoading{Loading: false})
			c.data.Notify(fmt.Sprintf("saved to %s", c.ref))
		}
		c.requestRender()
	}()
}

// requestRender asks the render loop for a redraw, unless it has already
// exited.
func (c *Controller) requestRender() {
	select {
	case c.controllerEvents <- controllerEventRender:
	case <-c.done:
	}
}

// ProcessKey processes a single key as if it was entered.
func (c *Controller) ProcessKey(key input.Key) {
	if msg, _ := c.data.Message(); msg != "" {
		c.data.ClearMessage()
	}
	if c.session.State().Error != "" {
		c.session.Dispatch(editor.ClearError{})
	}

	if !c.rootPane.ProcessInput(key) {
		log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
	}
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the TUI until quit.
func (c *Controller) Run() {
	log.Info().Stringer("draft", c.ref).Msg("memeplan TUI started")

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(c.done)
		defer c.initializedScreen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				// empty all further render events before rendering
				exitEventEncounteredOnEmpty := emptyRenderEvents(c.controllerEvents)
				// exit if an exit event was coming up
				if exitEventEncounteredOnEmpty {
					return
				}
				c.rootPane.Draw()

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	c.controllerEvents <- controllerEventRender

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}

			switch e := ev.(type) {
			case *tcell.EventKey:
				c.ProcessKey(input.KeyFromEvent(e))
			case *tcell.EventResize:
				c.syncer.NeedsSync()
			}

			c.requestRender()
		}
	}()

	wg.Wait()
	log.Info().Msg("memeplan TUI exited")
}
