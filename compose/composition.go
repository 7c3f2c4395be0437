package compose

import "fmt"

// Unbounded marks a Sequence with no declared end; it stays active from
// its start frame onwards, clipped only by its ancestors.
const Unbounded = -1

// SequenceDef declares a time-windowed placement of content. Start is a
// frame offset in the parent's local coordinate system (global frames for
// top-level definitions). Child windows are clipped to the intersection of
// every ancestor window. Gen may be nil for a pure grouping node.
type SequenceDef struct {
	Name     string
	Start    int
	Duration int
	Gen      Generator
	Children []SequenceDef
}

// node is one arena entry of a Composition's sequence tree. Children are
// held as arena indices so the tree has no cyclic ownership.
type node struct {
	name     string
	start    int
	duration int
	gen      Generator
	children []int
}

// Composition is one renderable asset: a named canvas with a frame rate, a
// total duration and an ordered tree of Sequences. It is immutable after
// NewComposition returns, so any number of goroutines may resolve frames
// concurrently without locking.
type Composition struct {
	name     string
	width    int
	height   int
	fps      float64
	duration int
	nodes    []node
	roots    []int
}

// NewComposition validates the definition tree and flattens it into an
// arena. durationFrames is the total frame count; use 1 for a still.
func NewComposition(name string, width, height int, fps float64, durationFrames int, defs []SequenceDef) (*Composition, error) {
	if name == "" {
		return nil, configErrorf("composition name must not be empty")
	}
	if width <= 0 || height <= 0 {
		return nil, configErrorf("composition %q dimensions must be positive, got %dx%d", name, width, height)
	}
	if fps <= 0 {
		return nil, configErrorf("composition %q fps must be positive, got %v", name, fps)
	}
	if durationFrames <= 0 {
		return nil, configErrorf("composition %q duration must be positive, got %d frames", name, durationFrames)
	}

	c := &Composition{
		name:     name,
		width:    width,
		height:   height,
		fps:      fps,
		duration: durationFrames,
	}
	for _, def := range defs {
		idx, err := c.addNode(def)
		if err != nil {
			return nil, err
		}
		c.roots = append(c.roots, idx)
	}
	return c, nil
}

func (c *Composition) addNode(def SequenceDef) (int, error) {
	if def.Duration < 0 && def.Duration != Unbounded {
		return 0, configErrorf("sequence %q has negative duration %d", def.Name, def.Duration)
	}
	if def.Gen == nil && len(def.Children) == 0 {
		return 0, configErrorf("sequence %q has neither a generator nor children", def.Name)
	}

	idx := len(c.nodes)
	c.nodes = append(c.nodes, node{
		name:     def.Name,
		start:    def.Start,
		duration: def.Duration,
		gen:      def.Gen,
	})
	for _, child := range def.Children {
		ci, err := c.addNode(child)
		if err != nil {
			return 0, err
		}
		c.nodes[idx].children = append(c.nodes[idx].children, ci)
	}
	return idx, nil
}

func (c *Composition) Name() string        { return c.name }
func (c *Composition) Width() int          { return c.width }
func (c *Composition) Height() int         { return c.height }
func (c *Composition) FPS() float64        { return c.fps }
func (c *Composition) DurationFrames() int { return c.duration }

// Still reports whether the composition is a single-frame asset.
func (c *Composition) Still() bool { return c.duration == 1 }

// ResolvedSequence records one active sequence's contribution at a frame.
type ResolvedSequence struct {
	Name         string
	LocalFrame   int
	Contribution Contribution
}

// FrameState is everything resolved for one global frame. It is freshly
// allocated on every resolution and never cached, so repeated or
// out-of-order resolution of the same frame yields identical values.
type FrameState struct {
	Frame int
	// Paints in painter order: back to front, siblings in declaration
	// order, a parent's own paints under its children's.
	Paints []Paint
	// Audio contributions mix additively, independent of paint order.
	Audio  []AudioClip
	Active []ResolvedSequence
}

// ResolveFrame computes the FrameState for global frame g. An error from a
// content generator aborts the frame; partial state is discarded because a
// substituted frame would silently corrupt the exported asset.
func (c *Composition) ResolveFrame(g int) (*FrameState, error) {
	fs := &FrameState{Frame: g}
	for _, idx := range c.roots {
		if err := c.resolve(idx, g, fs); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

// resolve walks one subtree. frame is expressed in the parent's local
// coordinate system; an inactive node short-circuits its whole subtree, so
// a child's generator is never consulted while any ancestor is outside its
// window.
func (c *Composition) resolve(idx, frame int, fs *FrameState) error {
	n := &c.nodes[idx]
	if !n.activeAt(frame) {
		return nil
	}
	local := frame - n.start

	if n.gen != nil {
		if local < 0 || (n.duration != Unbounded && local >= n.duration) {
			return fmt.Errorf("sequence %q local frame %d: %w", n.name, local, ErrOutOfWindow)
		}
		contrib, err := n.gen(local, c.fps)
		if err != nil {
			return &ResolutionError{Sequence: n.name, Frame: fs.Frame, Err: err}
		}
		fs.Paints = append(fs.Paints, contrib.Paints...)
		fs.Audio = append(fs.Audio, contrib.Audio...)
		fs.Active = append(fs.Active, ResolvedSequence{Name: n.name, LocalFrame: local, Contribution: contrib})
	}

	for _, ci := range n.children {
		if err := c.resolve(ci, local, fs); err != nil {
			return err
		}
	}
	return nil
}

func (n *node) activeAt(frame int) bool {
	if frame < n.start {
		return false
	}
	return n.duration == Unbounded || frame < n.start+n.duration
}
