package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazeviz/internal/anim"
	"github.com/san-kum/mazeviz/internal/render"
)

type drawCall struct {
	index int
	pixel render.Pixel
}

type fakeDrawer struct {
	calls []drawCall
}

func (f *fakeDrawer) DrawSegment(index int, p render.Pixel) {
	f.calls = append(f.calls, drawCall{index, p})
}

var _ = Describe("Controller", func() {
	const pathLen = 5
	interval := 10 * time.Millisecond

	var (
		drawer *fakeDrawer
		ctrl   *anim.Controller
		clock  time.Time
	)

	tick := func() {
		clock = clock.Add(interval)
		ctrl.Tick(clock)
	}

	BeforeEach(func() {
		drawer = &fakeDrawer{}
		ctrl = anim.NewController(drawer, pathLen, interval)
		clock = time.Unix(1000, 0)
	})

	It("starts idle at progress zero", func() {
		Expect(ctrl.State()).To(Equal(anim.StateIdle))
		Expect(ctrl.Progress()).To(BeZero())
	})

	It("ignores ticks while idle", func() {
		tick()
		tick()
		Expect(ctrl.Progress()).To(BeZero())
		Expect(drawer.calls).To(BeEmpty())
	})

	Describe("forward animation", func() {
		BeforeEach(func() {
			ctrl.Trigger(clock)
		})

		It("enters forward mode", func() {
			Expect(ctrl.State()).To(Equal(anim.StateForward))
		})

		It("reveals the entry point first without drawing", func() {
			tick()
			Expect(ctrl.Progress()).To(Equal(1))
			Expect(drawer.calls).To(BeEmpty())
		})

		It("draws one segment per accepted tick, in order", func() {
			for i := 0; i < pathLen; i++ {
				tick()
			}
			Expect(ctrl.Progress()).To(Equal(pathLen))
			Expect(drawer.calls).To(Equal([]drawCall{
				{1, render.PixelPath},
				{2, render.PixelPath},
				{3, render.PixelPath},
				{4, render.PixelPath},
			}))
		})

		It("advances progress without skipping values", func() {
			seen := []int{ctrl.Progress()}
			for i := 0; i < pathLen; i++ {
				tick()
				seen = append(seen, ctrl.Progress())
			}
			Expect(seen).To(Equal([]int{0, 1, 2, 3, 4, 5}))
		})

		It("returns to idle after completion", func() {
			for i := 0; i < pathLen+1; i++ {
				tick()
			}
			Expect(ctrl.State()).To(Equal(anim.StateIdle))
			Expect(ctrl.Progress()).To(Equal(pathLen))
		})

		It("ignores re-triggering while running", func() {
			tick()
			ctrl.Trigger(clock)
			Expect(ctrl.State()).To(Equal(anim.StateForward))
			Expect(ctrl.Progress()).To(Equal(1))
		})
	})

	Describe("reverse animation", func() {
		BeforeEach(func() {
			ctrl.Trigger(clock)
			for i := 0; i < pathLen+1; i++ {
				tick()
			}
			// fully revealed, idle again
			ctrl.Trigger(clock)
		})

		It("enters reverse mode when the path is fully shown", func() {
			Expect(ctrl.State()).To(Equal(anim.StateReverse))
		})

		It("erases segments from the end back to the entry", func() {
			drawer.calls = nil
			for ctrl.State() == anim.StateReverse {
				tick()
			}
			Expect(ctrl.Progress()).To(Equal(1))
			Expect(drawer.calls).To(Equal([]drawCall{
				{4, render.PixelErase},
				{3, render.PixelErase},
				{2, render.PixelErase},
				{1, render.PixelErase},
			}))
		})
	})

	Describe("rate limiting", func() {
		It("accepts at most one mutation per interval", func() {
			ctrl.Trigger(clock)
			clock = clock.Add(interval)
			ctrl.Tick(clock)
			before := ctrl.Progress()

			// a burst of ticks within the same interval
			for i := 0; i < 10; i++ {
				clock = clock.Add(time.Millisecond)
				ctrl.Tick(clock)
			}
			Expect(ctrl.Progress()).To(BeNumerically("<=", before+1))
		})

		It("gates the first tick against the trigger time", func() {
			ctrl.Trigger(clock)
			ctrl.Tick(clock.Add(interval / 2))
			Expect(ctrl.Progress()).To(BeZero())
		})
	})

	Describe("Reset", func() {
		It("returns to idle at progress zero", func() {
			ctrl.Trigger(clock)
			tick()
			tick()
			ctrl.Reset()
			Expect(ctrl.State()).To(Equal(anim.StateIdle))
			Expect(ctrl.Progress()).To(BeZero())
		})
	})

	Describe("two-point paths", func() {
		It("reverses straight to idle at progress one", func() {
			ctrl = anim.NewController(drawer, 2, interval)
			ctrl.Trigger(clock)
			tick() // progress 1
			tick() // progress 2, draws segment 1
			tick() // idle
			Expect(ctrl.State()).To(Equal(anim.StateIdle))

			ctrl.Trigger(clock)
			Expect(ctrl.State()).To(Equal(anim.StateReverse))
			tick() // erase segment 1, progress 1
			tick() // idle
			Expect(ctrl.State()).To(Equal(anim.StateIdle))
			Expect(ctrl.Progress()).To(Equal(1))
		})
	})
})
