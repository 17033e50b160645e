package dispatcher

import (
	"runtime"
	"time"

	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/input/key"
	"github.com/dshills/cellpad/internal/input/mode"
)

// Routes lists the families consulted in each mode, in priority order.
type Routes struct {
	// Instant families are tried first in every mode.
	Instant []handler.Family
	// Editing families handle events while editing the document.
	Editing []handler.Family
	// Prompt families handle events while the command line takes input.
	Prompt []handler.Family
	// PostConfirm families handle events after a delayed command confirmed.
	PostConfirm map[mode.DelayKind][]handler.Family
}

// Dispatcher routes key events to command families.
type Dispatcher struct {
	routes  Routes
	config  Config
	metrics *Metrics
}

// New creates a dispatcher over routes.
func New(routes Routes, config Config) *Dispatcher {
	d := &Dispatcher{routes: routes, config: config}
	if config.Metrics {
		d.metrics = NewMetrics()
	}
	return d
}

// Metrics returns the collected metrics, or nil if disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Families returns the families consulted for m, instant families first.
func (d *Dispatcher) Families(m mode.Mode) []handler.Family {
	out := make([]handler.Family, 0, len(d.routes.Instant)+4)
	out = append(out, d.routes.Instant...)
	switch {
	case m.IsEditing():
		out = append(out, d.routes.Editing...)
	case m.IsPromptActive():
		out = append(out, d.routes.Prompt...)
	default:
		out = append(out, d.routes.PostConfirm[m.Armed]...)
	}
	return out
}

// Handle dispatches ev against s. The first family that parses ev has its
// command applied. If no family does, ev is dropped and the result is a
// no-op with Consumed unset.
func (d *Dispatcher) Handle(ev key.Event, s *execctx.Session) handler.Result {
	for _, f := range d.Families(s.Mode) {
		cmd, ok := f.Parse(ev, s)
		if !ok {
			continue
		}

		start := time.Now()
		result := d.execute(cmd, s)
		elapsed := time.Since(start)
		if d.metrics != nil {
			d.metrics.RecordDispatch(cmd.Name(), elapsed, result.Status)
		}
		if d.config.SlowCommand > 0 && elapsed > d.config.SlowCommand {
			s.Logger.Warn("%s took %s", cmd.Name(), elapsed)
		}

		result.Consumed = true
		result.Command = cmd.Name()
		s.LastCommand = cmd.Name()
		if result.IsError() {
			s.Logger.Warn("%s: %v", cmd.Name(), result.Error)
		} else {
			s.Logger.Debug("%s %s -> %s", f.Name(), cmd.Name(), result.Status)
		}
		return result
	}

	s.LastCommand = ""
	if d.metrics != nil {
		d.metrics.RecordDropped()
	}
	s.Logger.Debug("dropped %s in %s", ev, s.Mode)
	return handler.NoOp()
}

func (d *Dispatcher) execute(cmd handler.Command, s *execctx.Session) (result handler.Result) {
	if !d.config.RecoverPanics {
		return cmd.Apply(s)
	}
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			s.Logger.Error("command %s panicked: %v\n%s", cmd.Name(), r, stack[:n])

			result = handler.Errorf("command %s failed: %v", cmd.Name(), r)
			if d.metrics != nil {
				d.metrics.RecordPanic(cmd.Name())
			}
		}
	}()
	return cmd.Apply(s)
}
