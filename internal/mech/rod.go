package mech

// Rod is a link dragged by its anchor. Each step the far end is placed
// Length away from the new anchor position, pointing at where the far end
// was on the previous step. The one-step lag gives the rod its trailing
// swing and is part of the linkage's observable behaviour.
type Rod struct {
	length  float64
	dir     float64
	stepped bool
	p0      Vec
	anchor  *Joint
	emitted Joint
}

// NewRod returns a rod whose first Update points along angle.
func NewRod(length, angle float64, anchor *Joint) (*Rod, error) {
	if err := checkLength(KindRod, length); err != nil {
		return nil, err
	}
	if anchor == nil {
		return nil, ErrNilAnchor
	}
	r := &Rod{
		length: length,
		dir:    angle,
		anchor: anchor,
	}
	r.rest()
	return r, nil
}

func (r *Rod) Kind() Kind      { return KindRod }
func (r *Rod) Length() float64 { return r.length }
func (r *Rod) Anchor() *Joint  { return r.anchor }
func (r *Rod) Emitted() *Joint { return &r.emitted }

// Direction returns the direction used by the last Update, or the
// construction angle before the first one.
func (r *Rod) Direction() float64 { return r.dir }

func (r *Rod) attach(a *Joint) {
	r.anchor = a
	if !r.stepped {
		r.rest()
	}
}

// rest lays the rod out along its seed direction from the current anchor.
func (r *Rod) rest() {
	r.p0 = r.anchor.Get()
	r.emitted.Set(r.p0.Add(Polar(r.length, r.dir)))
}

func (r *Rod) Endpoints() (p0, p1 Vec) {
	return r.p0, r.emitted.Get()
}

func (r *Rod) Update() (Vec, bool) {
	prev := r.emitted.Get()
	r.p0 = r.anchor.Get()
	if r.stepped {
		if dir, ok := prev.Sub(r.p0).Angle(); ok {
			r.dir = dir
		}
	}
	r.stepped = true
	r.emitted.Set(r.p0.Add(Polar(r.length, r.dir)))
	return Vec{}, false
}
