package turtle

import (
	"fmt"

	"github.com/tliron/commonlog"
	"pgregory.net/rand"

	lsystem "github.com/viktordanov/turtlesystem"
)

var log = commonlog.GetLogger("turtle")

// Handler is invoked for every occurrence of its token during a replay.
type Handler interface {
	Apply(s *State) error
}

type HandlerFunc func(s *State) error

func (f HandlerFunc) Apply(s *State) error {
	return f(s)
}

type boundAction struct {
	action       Action
	globalRotate int
}

func (b boundAction) Apply(s *State) error {
	return b.action.Apply(s, b.globalRotate)
}

// Bind returns a Handler applying a with the given global rotation.
func Bind(a Action, globalRotate int) Handler {
	return boundAction{action: a, globalRotate: globalRotate}
}

// Renderer replays generations of an LSystem through the handlers
// registered for its tokens. Tokens without a handler are skipped.
type Renderer struct {
	handlers []Handler
	seed     uint64
	seeded   bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Seed makes every replay draw stochastic actions from a source seeded with
// seed, so repeated replays produce the same figure.
func (r *Renderer) Seed(seed uint64) {
	r.seed = seed
	r.seeded = true
}

// Register binds h to id, replacing any earlier handler.
func (r *Renderer) Register(id lsystem.TokenID, h Handler) {
	if int(id) >= len(r.handlers) {
		grown := make([]Handler, int(id)+1)
		copy(grown, r.handlers)
		r.handlers = grown
	}
	r.handlers[id] = h
}

// RegisterAction validates a and binds it to id with the given global
// rotation.
func (r *Renderer) RegisterAction(id lsystem.TokenID, a Action, globalRotate int) error {
	if err := a.Validate(); err != nil {
		return err
	}
	r.Register(id, Bind(a, globalRotate))
	return nil
}

func (r *Renderer) RegisterFunc(id lsystem.TokenID, fn func(s *State) error) {
	r.Register(id, HandlerFunc(fn))
}

func (r *Renderer) handler(id lsystem.TokenID) Handler {
	if id < 0 || int(id) >= len(r.handlers) {
		return nil
	}
	return r.handlers[id]
}

func (r *Renderer) newRand() *rand.Rand {
	if r.seeded {
		return rand.New(r.seed)
	}
	return rand.New()
}

// Replay runs the current generation of system against a fresh State.
// The first handler error aborts the replay.
func (r *Renderer) Replay(system *lsystem.LSystem) (*State, error) {
	state := NewState(r.newRand())

	position := 0
	err := system.Walk(func(id lsystem.TokenID) error {
		if h := r.handler(id); h != nil {
			if err := h.Apply(state); err != nil {
				name, _ := system.Arena().Name(id)
				return fmt.Errorf("replaying %q at position %d: %w", name, position, err)
			}
		}
		position++
		return nil
	})
	if err != nil {
		return nil, err
	}

	width, height, _, _ := state.turtle.Base().Bounds()
	log.Debugf("replayed %d tokens of generation %d: %d lines in %dx%d",
		position, system.Generation(), len(state.turtle.Base().Lines()), width, height)
	return state, nil
}

// Render replays system and hands the resulting drawing to rasterizer.
func (r *Renderer) Render(system *lsystem.LSystem, rasterizer Rasterizer, opts Options) error {
	state, err := r.Replay(system)
	if err != nil {
		return err
	}
	return rasterizer.Rasterize(state.Drawing(), opts)
}
