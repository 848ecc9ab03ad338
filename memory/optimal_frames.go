package memory

import (
	"slices"
)

// OptimalFrames implements Belady's optimal replacement by looking ahead
// in the reference stream.
//
// Victim selection scans the frames in slot order. The first frame that is
// never referenced again is taken immediately. Otherwise the frame whose
// next use is strictly furthest away wins, so earlier slots win ties. The
// running furthest distance starts at zero, which means a frame used by the
// very next reference can only be picked when nothing beats it; in that case
// the last slot is replaced. The new page takes the victim's slot.
type OptimalFrames struct {
	pages    []int
	capacity int
	frames   []int
}

// NewOptimalFrames creates an empty optimal frame set
func NewOptimalFrames(pages []int, capacity int) *OptimalFrames {
	if capacity < 1 {
		capacity = 1 // Minimum size
	}

	return &OptimalFrames{
		pages:    pages,
		capacity: capacity,
		frames:   make([]int, 0, capacity),
	}
}

// Reference replays pages[i]
func (o *OptimalFrames) Reference(i int) Step {
	page := o.pages[i]
	step := Step{Index: i, Page: page}

	if o.slotOf(page) >= 0 {
		return step
	}

	step.Fault = true
	if len(o.frames) < o.capacity {
		o.frames = append(o.frames, page)
		return step
	}

	slot := o.victim(i + 1)
	step.Evicted = o.frames[slot]
	step.HasEvicted = true
	o.frames[slot] = page
	return step
}

// victim picks the slot to replace given that the future starts at from
func (o *OptimalFrames) victim(from int) int {
	future := o.pages[from:]
	furthest := 0
	slot := -1
	for j, resident := range o.frames {
		next := slices.Index(future, resident)
		if next < 0 {
			return j
		}
		if next > furthest {
			furthest = next
			slot = j
		}
	}
	if slot < 0 {
		slot = len(o.frames) - 1
	}
	return slot
}

func (o *OptimalFrames) slotOf(page int) int {
	return slices.Index(o.frames, page)
}

// Resident returns the pages in slot order
func (o *OptimalFrames) Resident() []int {
	resident := make([]int, len(o.frames))
	copy(resident, o.frames)
	return resident
}

func (o *OptimalFrames) Len() int {
	return len(o.frames)
}
