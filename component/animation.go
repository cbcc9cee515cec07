package component

import "image"

// Animation is a frame-based animator over an ordered image sequence. Each
// image is shown for Duration ticks. The image slice is shared between every
// clone of an animation and must not be modified.
type Animation struct {
	images   []image.Image
	duration int
	loop     bool

	frame int
	done  bool
}

// NewAnimation creates an Animation. `duration` is how many ticks each image
// stays on screen (defaults to 5 if <= 0). `loop` controls whether the
// animation wraps or holds its last image.
func NewAnimation(images []image.Image, duration int, loop bool) *Animation {
	if duration <= 0 {
		duration = 5
	}
	return &Animation{images: images, duration: duration, loop: loop}
}

// Clone returns a fresh playback of the same animation: frame 0, not done,
// sharing the image slice.
func (a *Animation) Clone() *Animation {
	return &Animation{images: a.images, duration: a.duration, loop: a.loop}
}

// Update advances the animation by one tick. Call once per game update.
func (a *Animation) Update() {
	if a == nil || len(a.images) == 0 {
		return
	}
	total := a.duration * len(a.images)
	if a.loop {
		a.frame = (a.frame + 1) % total
		return
	}
	if a.frame < total-1 {
		a.frame++
	} else {
		a.done = true
	}
}

// Image returns the image for the current frame, or nil for an empty animation.
func (a *Animation) Image() image.Image {
	if a == nil || len(a.images) == 0 {
		return nil
	}
	return a.images[a.frame/a.duration]
}

func (a *Animation) Frame() int      { return a.frame }
func (a *Animation) Done() bool      { return a.done }
func (a *Animation) Loop() bool      { return a.loop }
func (a *Animation) Duration() int   { return a.duration }
func (a *Animation) FrameCount() int { return len(a.images) }
