package events

import "github.com/sixfold/wheelhouse/internal/logging"

type InputTracer struct{}

type NavTracer struct{}

type ModeTracer struct{}

type PrefsTracer struct{}

var (
	Input = InputTracer{}
	Nav   = NavTracer{}
	Mode  = ModeTracer{}
	Prefs = PrefsTracer{}
)

func (InputTracer) Classified(action, reason string, delta float64, inPane bool) {
	logging.Trace("input.classified", map[string]interface{}{
		"action": action,
		"reason": reason,
		"delta":  delta,
		"inPane": inPane,
	})
}

func (NavTracer) Accept(from, to int, source string, seq uint64) {
	logging.Trace("nav.accept", map[string]interface{}{
		"from":   from,
		"to":     to,
		"source": source,
		"seq":    seq,
	})
}

func (NavTracer) Reject(target int, source string) {
	logging.Trace("nav.reject", map[string]interface{}{
		"target": target,
		"source": source,
	})
}

func (NavTracer) Release(seq uint64, index int) {
	logging.Trace("nav.release", map[string]interface{}{"seq": seq, "index": index})
}

func (ModeTracer) Switch(from, to string) {
	logging.Trace("mode.switch", map[string]interface{}{"from": from, "to": to})
}

func (ModeTracer) Forced(mode, reason string) {
	logging.Trace("mode.forced", map[string]interface{}{"mode": mode, "reason": reason})
}

func (PrefsTracer) Loaded(language, path string) {
	logging.Trace("prefs.loaded", map[string]interface{}{"language": language, "path": path})
}

func (PrefsTracer) Saved(language string) {
	logging.Trace("prefs.saved", map[string]interface{}{"language": language})
}

func (PrefsTracer) Changed(language string) {
	logging.Trace("prefs.changed", map[string]interface{}{"language": language})
}

func (PrefsTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("prefs.error", map[string]interface{}{"error": err.Error()})
}
