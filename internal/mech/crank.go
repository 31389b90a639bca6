package mech

// Crank is a link rotating about a pivot fixed at construction. Its far end
// is the anchor position projected onto the circle of radius Length about
// the pivot, and it asks the chain to clamp the anchor onto that circle.
type Crank struct {
	length  float64
	angle   float64
	pivot   Vec
	anchor  *Joint
	emitted Joint
}

// NewCrank returns a crank whose pivot is the anchor's current position.
// angle only positions the far end until the first Update and serves as the
// fallback direction while the anchor sits exactly on the pivot.
func NewCrank(length, angle float64, anchor *Joint) (*Crank, error) {
	if err := checkLength(KindCrank, length); err != nil {
		return nil, err
	}
	if anchor == nil {
		return nil, ErrNilAnchor
	}
	c := &Crank{
		length: length,
		angle:  angle,
		pivot:  anchor.Get(),
		anchor: anchor,
	}
	c.emitted.Set(c.pivot.Add(Polar(length, angle)))
	return c, nil
}

func (c *Crank) Kind() Kind      { return KindCrank }
func (c *Crank) Length() float64 { return c.length }
func (c *Crank) Anchor() *Joint  { return c.anchor }
func (c *Crank) Emitted() *Joint { return &c.emitted }
func (c *Crank) Pivot() Vec      { return c.pivot }
func (c *Crank) Angle() float64  { return c.angle }
func (c *Crank) attach(a *Joint) { c.anchor = a }

func (c *Crank) Endpoints() (p0, p1 Vec) {
	return c.pivot, c.emitted.Get()
}

// Constrain projects p onto the crank circle and returns the projected point
// and the angle used.
func (c *Crank) Constrain(p Vec) (Vec, float64) {
	alpha, ok := p.Sub(c.pivot).Angle()
	if !ok {
		alpha = c.angle
	}
	return c.pivot.Add(Polar(c.length, alpha)), alpha
}

func (c *Crank) Update() (Vec, bool) {
	p1, alpha := c.Constrain(c.anchor.Get())
	c.angle = alpha
	c.emitted.Set(p1)
	return p1, true
}
