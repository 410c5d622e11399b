package main

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/funny-falcon/rawmem/arc"
	"github.com/funny-falcon/rawmem/ring"
	"github.com/funny-falcon/rawmem/vec"
)

type VecReport struct {
	Pushed   int  `json:"pushed"`
	Cap      int  `json:"cap"`
	Lifo     bool `json:"lifo"`
	Insert   bool `json:"insert"`
	Drained  int  `json:"drained"`
	Abandon  bool `json:"abandon"`
	IntoIter bool `json:"into_iter"`
	OK       bool `json:"ok"`
}

type ArcReport struct {
	Workers int   `json:"workers"`
	Clones  int   `json:"clones"`
	Drops   int32 `json:"drops"`
	OK      bool  `json:"ok"`
}

type RingReport struct {
	Size      int  `json:"size"`
	EmptyPop  bool `json:"empty_pop"`
	FullPush  bool `json:"full_push"`
	FirstOut  bool `json:"first_out"`
	FullAfter bool `json:"full_after_pop"`
	OK        bool `json:"ok"`
}

func checkVec(n int) (r VecReport) {
	v := vec.New[int]()
	defer v.Release()

	for i := 0; i < n; i++ {
		v.Push(i)
	}
	r.Pushed = v.Len()
	r.Cap = v.Cap()

	r.Lifo = true
	for i := n - 1; i >= n/2; i-- {
		if x, ok := v.Pop(); !ok || x != i {
			r.Lifo = false
			break
		}
	}

	r.Insert = true
	for _, i := range []int{0, v.Len() / 2, v.Len()} {
		if err := v.Insert(-1, i); err != nil {
			r.Insert = false
			break
		}
		if x, ok := v.Remove(i); !ok || x != -1 {
			r.Insert = false
			break
		}
	}

	ordered := true
	for x := range v.Drain().All() {
		if x != r.Drained {
			ordered = false
		}
		r.Drained++
	}

	for i := 0; i < 10; i++ {
		v.Push(i)
	}
	d := v.Drain()
	d.Next()
	d.Release()
	r.Abandon = v.Len() == 0

	for i := 0; i < 10; i++ {
		v.Push(i)
	}
	it := v.IntoIter()
	front, _ := it.Next()
	back, _ := it.NextBack()
	r.IntoIter = front == 0 && back == 9 && it.Len() == 8
	it.Release()

	r.OK = r.Pushed == n && r.Lifo && r.Insert && ordered && r.Drained == n/2 &&
		r.Abandon && r.IntoIter
	return r
}

type shared struct {
	drops *atomic.Int32
}

func (s *shared) Release() { s.drops.Add(1) }

func checkArc(workers, clones int) (r ArcReport) {
	var drops atomic.Int32
	root := arc.New(shared{drops: &drops})

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		h := root.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer h.Release()
			for i := 0; i < clones; i++ {
				c := h.Clone()
				_ = c.Get()
				c.Release()
			}
		}()
	}
	root.Release()
	wg.Wait()

	r.Workers = workers
	r.Clones = workers * clones
	r.Drops = drops.Load()
	r.OK = r.Drops == 1
	return r
}

func checkRing(n int) (r RingReport) {
	rb := ring.New[int](n)
	defer rb.Release()
	r.Size = n

	_, err := rb.Pop()
	r.EmptyPop = errors.Is(err, ring.ErrEmpty)

	for i := 0; i < n; i++ {
		if err := rb.Push(i); err != nil {
			return r
		}
	}
	r.FullPush = errors.Is(rb.Push(n), ring.ErrFull)
	x, err := rb.Pop()
	r.FirstOut = err == nil && x == 0
	r.FullAfter = rb.Full()

	r.OK = r.EmptyPop && r.FullPush && r.FirstOut && !r.FullAfter
	return r
}
