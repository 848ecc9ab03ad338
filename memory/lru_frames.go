package memory

import (
	"container/list"
)

// LRUFrames implements LRU (Least Recently Used) replacement.
// The list front is the least recently used page, the back the most recent.
type LRUFrames struct {
	pages    []int
	capacity int
	lruList  *list.List
	lruMap   map[int]*list.Element
}

// NewLRUFrames creates an empty LRU frame set
func NewLRUFrames(pages []int, capacity int) *LRUFrames {
	if capacity < 1 {
		capacity = 1 // Minimum size
	}

	return &LRUFrames{
		pages:    pages,
		capacity: capacity,
		lruList:  list.New(),
		lruMap:   make(map[int]*list.Element),
	}
}

// Reference replays pages[i].
// A hit moves the page to the back; a miss evicts the front when full.
func (lru *LRUFrames) Reference(i int) Step {
	page := lru.pages[i]
	step := Step{Index: i, Page: page}

	if elem, exists := lru.lruMap[page]; exists {
		lru.lruList.MoveToBack(elem)
		return step
	}

	step.Fault = true
	if lru.lruList.Len() >= lru.capacity {
		oldest := lru.lruList.Front()
		victim := oldest.Value.(int)
		lru.lruList.Remove(oldest)
		delete(lru.lruMap, victim)
		step.Evicted = victim
		step.HasEvicted = true
	}

	lru.lruMap[page] = lru.lruList.PushBack(page)
	return step
}

// Resident returns the pages from least to most recently used
func (lru *LRUFrames) Resident() []int {
	resident := make([]int, 0, lru.lruList.Len())
	for e := lru.lruList.Front(); e != nil; e = e.Next() {
		resident = append(resident, e.Value.(int))
	}
	return resident
}

// Len returns the number of resident pages
func (lru *LRUFrames) Len() int {
	return lru.lruList.Len()
}
