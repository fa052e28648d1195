package picker

// Surface resolves a selector to the reel mounted there, or nil.
type Surface interface {
	Lookup(selector string) Reel
}

// Reel is the display container a picker renders into.
type Reel interface {
	// Attached reports whether the container is still on screen.
	Attached() bool
	// Clear removes every mounted item.
	Clear()
	// Mount appends one item per name in a single batch.
	Mount(names []string)
	// Animate starts plan and returns its handle.
	Animate(plan Plan) Animation
	// TrimToLast removes every item except the last one.
	TrimToLast()
	// Items returns the mounted item texts in order.
	Items() []string
}

// Animation is a running reel transition.
type Animation interface {
	// Finished is closed once the transition completes.
	Finished() <-chan struct{}
	// Finish jumps to the final frame and keeps it there.
	Finish()
}
