package lisp

// Arena owns every frame captured by a function, class or instance.  Frames
// are addressed by Handle and live as long as the arena.  Handles are never
// reused.
type Arena struct {
	frames []*LEnv
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Push stores env in the arena and returns its handle.  An env that was
// already pushed keeps its original handle.
func (a *Arena) Push(env *LEnv) Handle {
	if h, ok := env.Handle(); ok {
		return h
	}
	env.handle = Handle(len(a.frames))
	a.frames = append(a.frames, env)
	return env.handle
}

// Frame returns the environment referenced by h.
func (a *Arena) Frame(h Handle) (*LEnv, error) {
	if h < 0 || int(h) >= len(a.frames) {
		return nil, reasonf("invalid frame handle %d", h)
	}
	return a.frames[h], nil
}

// Len returns the number of frames in the arena.
func (a *Arena) Len() int {
	return len(a.frames)
}
