package mech

// Chain is an ordered linkage hanging off a driven root joint. Each link is
// anchored at the previous link's emitted joint; the first at the root.
//
// The root belongs to the caller. A simulation step is at most one write to
// the root followed by one UpdateAll; Step does both. Writing the root while
// UpdateAll runs is not supported, and nothing here guards against it.
type Chain struct {
	root  *Joint
	links []Link
}

func NewChain(root *Joint) (*Chain, error) {
	if root == nil {
		return nil, ErrNilAnchor
	}
	return &Chain{root: root}, nil
}

// Root returns the driven joint.
func (c *Chain) Root() *Joint {
	return c.root
}

// Append adds l to the end of the chain. The first link must already be
// anchored at the root; later links are attached to the current last link's
// emitted joint. Wiring happens once and is never revisited. Only the first
// link may be a crank.
func (c *Chain) Append(l Link) error {
	if l == nil {
		return ErrNilLink
	}
	for _, existing := range c.links {
		if existing == l {
			return ErrDuplicateLink
		}
	}
	if len(c.links) == 0 {
		if l.Anchor() != c.root {
			return ErrRootMismatch
		}
	} else {
		if l.Kind() == KindCrank {
			return ErrCrankNotAtRoot
		}
		l.attach(c.links[len(c.links)-1].Emitted())
	}
	c.links = append(c.links, l)
	return nil
}

// UpdateAll updates every link in insertion order. A link that constrains its
// anchor has the clamped position written back before the next link reads
// its own anchor.
func (c *Chain) UpdateAll() {
	for _, l := range c.links {
		if clamped, ok := l.Update(); ok {
			l.Anchor().Set(clamped)
		}
	}
}

// Step drives the root to p and advances the chain by one step.
func (c *Chain) Step(p Vec) {
	c.root.Set(p)
	c.UpdateAll()
}

func (c *Chain) Len() int {
	return len(c.links)
}

// Link returns the i-th link. It panics if i is out of range.
func (c *Chain) Link(i int) Link {
	return c.links[i]
}

// EndpointsOf returns the endpoints of the i-th link.
func (c *Chain) EndpointsOf(i int) (p0, p1 Vec, err error) {
	if i < 0 || i >= len(c.links) {
		return Vec{}, Vec{}, indexError(i, len(c.links))
	}
	p0, p1 = c.links[i].Endpoints()
	return p0, p1, nil
}

// Segments returns the current geometry of every link in chain order.
func (c *Chain) Segments() []Segment {
	segs := make([]Segment, len(c.links))
	for i, l := range c.links {
		p0, p1 := l.Endpoints()
		segs[i] = Segment{Kind: l.Kind(), P0: p0, P1: p1}
	}
	return segs
}

// Tip returns the far end of the last link, or the root position when the
// chain is empty.
func (c *Chain) Tip() Vec {
	if len(c.links) == 0 {
		return c.root.Get()
	}
	return c.links[len(c.links)-1].Emitted().Get()
}
