package events

import "github.com/sixfold/wheelhouse/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Resize(width, height int, reduced bool) {
	logging.Trace("app.resize", map[string]interface{}{
		"width":   width,
		"height":  height,
		"reduced": reduced,
	})
}

func (AppTracer) ResizeDebounced(seq int) {
	logging.Trace("app.resize-debounced", map[string]interface{}{"seq": seq})
}
