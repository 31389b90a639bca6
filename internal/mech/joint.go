package mech

// Joint is a shared connection point between links. Links hold a *Joint, so
// a Set is visible to every link referencing it on its next Update.
type Joint struct {
	pos Vec
}

func NewJoint(p Vec) *Joint {
	return &Joint{pos: p}
}

// Set overwrites the joint position.
func (j *Joint) Set(p Vec) {
	j.pos = p
}

func (j *Joint) Get() Vec {
	return j.pos
}
