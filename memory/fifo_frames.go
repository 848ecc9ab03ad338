package memory

import (
	"container/list"
)

// FIFOFrames implements first-in first-out replacement.
// Hits never reorder the queue.
type FIFOFrames struct {
	pages    []int
	capacity int
	queue    *list.List
	resident map[int]*list.Element
}

// NewFIFOFrames creates an empty FIFO frame set
func NewFIFOFrames(pages []int, capacity int) *FIFOFrames {
	if capacity < 1 {
		capacity = 1 // Minimum size
	}

	return &FIFOFrames{
		pages:    pages,
		capacity: capacity,
		queue:    list.New(),
		resident: make(map[int]*list.Element),
	}
}

// Reference replays pages[i]
func (f *FIFOFrames) Reference(i int) Step {
	page := f.pages[i]
	step := Step{Index: i, Page: page}

	if _, ok := f.resident[page]; ok {
		return step
	}

	step.Fault = true
	if f.queue.Len() >= f.capacity {
		// Oldest arrival sits at the front
		front := f.queue.Front()
		victim := front.Value.(int)
		f.queue.Remove(front)
		delete(f.resident, victim)
		step.Evicted = victim
		step.HasEvicted = true
	}

	f.resident[page] = f.queue.PushBack(page)
	return step
}

// Resident returns the pages in arrival order
func (f *FIFOFrames) Resident() []int {
	resident := make([]int, 0, f.queue.Len())
	for e := f.queue.Front(); e != nil; e = e.Next() {
		resident = append(resident, e.Value.(int))
	}
	return resident
}

func (f *FIFOFrames) Len() int {
	return f.queue.Len()
}
