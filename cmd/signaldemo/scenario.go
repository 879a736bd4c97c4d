package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/krew-solutions/ascetic-utils-go/asceticutils/signals"
)

const (
	ActionConnect    = "connect"
	ActionDisconnect = "disconnect"
	ActionReconnect  = "reconnect"
	ActionEmit       = "emit"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a scripted sequence of operations against one Signal[string].
type Scenario struct {
	// Subscribers are connected, in order, before the first step.
	Subscribers []string `yaml:"subscribers"`
	// Failing subscribers return an error whenever they receive an event.
	Failing []string `yaml:"failing"`
	Steps   []Step   `yaml:"steps"`
}

type Step struct {
	Action  string `yaml:"action"`
	Target  string `yaml:"target,omitempty"`
	Payload string `yaml:"payload,omitempty"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		Subscribers: []string{"A", "B", "C"},
		Steps: []Step{
			{Action: ActionEmit, Payload: "first"},
			{Action: ActionDisconnect, Target: "B"},
			{Action: ActionEmit, Payload: "second"},
			{Action: ActionConnect, Target: "D"},
			{Action: ActionReconnect, Target: "B"},
			{Action: ActionEmit, Payload: "third"},
		},
	}
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read scenario")
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "unable to parse scenario")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	for i, step := range sc.Steps {
		switch step.Action {
		case ActionConnect, ActionDisconnect, ActionReconnect:
			if step.Target == "" {
				return errors.Wrapf(ErrInvalidScenario, "step %d: %s needs a target", i, step.Action)
			}
		case ActionEmit:
		default:
			return errors.Wrapf(ErrInvalidScenario, "step %d: unknown action %q", i, step.Action)
		}
	}
	return nil
}

type runner struct {
	signal      *signals.Signal[string]
	connections map[string]*signals.Connection[string]
	failing     map[string]bool
	received    []string
	logger      *slog.Logger
}

// Run replays sc and writes one line per emission listing who received it.
// A failing step does not stop the run; all step errors are returned together.
func Run(sc *Scenario, logger *slog.Logger, out io.Writer) error {
	r := &runner{
		signal:      signals.NewSignal[string](),
		connections: make(map[string]*signals.Connection[string]),
		failing:     make(map[string]bool),
		logger:      logger,
	}
	for _, name := range sc.Failing {
		r.failing[name] = true
	}

	var result error
	for _, name := range sc.Subscribers {
		if err := r.connect(name); err != nil {
			result = multierror.Append(result, err)
		}
	}
	for i, step := range sc.Steps {
		if err := r.apply(step, out); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "step %d (%s)", i, step.Action))
		}
	}
	return result
}

func (r *runner) apply(step Step, out io.Writer) error {
	switch step.Action {
	case ActionConnect:
		return r.connect(step.Target)
	case ActionDisconnect, ActionReconnect:
		conn, ok := r.connections[step.Target]
		if !ok {
			return errors.Errorf("unknown subscriber %q", step.Target)
		}
		if step.Action == ActionDisconnect {
			conn.Disconnect()
		} else {
			conn.Reconnect()
		}
		r.logger.Debug(step.Action, "subscriber", step.Target, "id", conn.ID(), "connected", conn.Connected())
		return nil
	case ActionEmit:
		r.received = r.received[:0]
		err := r.signal.Emit(step.Payload)
		fmt.Fprintf(out, "emit %s: %s\n", step.Payload, strings.Join(r.received, ","))
		r.logger.Info("emitted", "payload", step.Payload, "received", len(r.received), "registered", r.signal.Len())
		return err
	default:
		return errors.Wrapf(ErrInvalidScenario, "unknown action %q", step.Action)
	}
}

func (r *runner) connect(name string) error {
	if _, ok := r.connections[name]; ok {
		return errors.Errorf("subscriber %q already connected", name)
	}
	conn := r.signal.Connect(func(payload string) error {
		r.received = append(r.received, name)
		if r.failing[name] {
			return errors.Errorf("subscriber %q failed on %q", name, payload)
		}
		return nil
	})
	r.connections[name] = conn
	r.logger.Debug(ActionConnect, "subscriber", name, "id", conn.ID())
	return nil
}
