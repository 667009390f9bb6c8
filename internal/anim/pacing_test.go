package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Shashwat-deb/finmotif/internal/anim"
)

var _ = Describe("Throttle", func() {
	var (
		clock    *anim.FakeClock
		throttle *anim.Throttle
	)

	BeforeEach(func() {
		clock = anim.NewFakeClock(time.Unix(0, 0))
		throttle = anim.NewThrottle(50 * time.Millisecond)
	})

	It("accepts the first callback immediately", func() {
		Expect(throttle.Accept(clock.Now())).To(BeTrue())
	})

	It("rejects callbacks inside the budget and accepts after it", func() {
		Expect(throttle.Accept(clock.Now())).To(BeTrue())

		clock.Advance(16 * time.Millisecond)
		Expect(throttle.Accept(clock.Now())).To(BeFalse())

		clock.Advance(16 * time.Millisecond)
		Expect(throttle.Accept(clock.Now())).To(BeFalse())

		clock.Advance(20 * time.Millisecond)
		Expect(throttle.Accept(clock.Now())).To(BeTrue())
	})

	It("caps a 60Hz callback chain at 20 accepted frames per second", func() {
		accepted := 0
		for i := 0; i < 60; i++ {
			if throttle.Accept(clock.Now()) {
				accepted++
			}
			clock.Advance(time.Second / 60)
		}
		Expect(accepted).To(BeNumerically("~", 20, 1))
	})

	It("does not burst after a hidden interval once reset", func() {
		Expect(throttle.Accept(clock.Now())).To(BeTrue())

		clock.Advance(10 * time.Second)
		throttle.Reset(clock.Now())

		Expect(throttle.Accept(clock.Now())).To(BeFalse())
		clock.Advance(50 * time.Millisecond)
		Expect(throttle.Accept(clock.Now())).To(BeTrue())
	})

	It("accepts every callback with a zero budget", func() {
		every := anim.NewThrottle(0)
		for i := 0; i < 5; i++ {
			Expect(every.Accept(clock.Now())).To(BeTrue())
			clock.Advance(time.Millisecond)
		}
	})
})

var _ = Describe("Debouncer", func() {
	var (
		clock *anim.FakeClock
		deb   *anim.Debouncer
	)

	BeforeEach(func() {
		clock = anim.NewFakeClock(time.Unix(0, 0))
		deb = anim.NewDebouncer(250 * time.Millisecond)
	})

	It("does not fire before any event", func() {
		Expect(deb.Fire(clock.Now())).To(BeFalse())
		Expect(deb.Pending()).To(BeFalse())
	})

	It("fires exactly once after the quiet period", func() {
		deb.Bump(clock.Now())

		clock.Advance(100 * time.Millisecond)
		Expect(deb.Fire(clock.Now())).To(BeFalse())

		clock.Advance(150 * time.Millisecond)
		Expect(deb.Fire(clock.Now())).To(BeTrue())
		Expect(deb.Fire(clock.Now())).To(BeFalse())
	})

	It("extends the deadline while events keep arriving", func() {
		deb.Bump(clock.Now())
		clock.Advance(200 * time.Millisecond)
		deb.Bump(clock.Now())
		clock.Advance(200 * time.Millisecond)

		Expect(deb.Fire(clock.Now())).To(BeFalse())

		clock.Advance(50 * time.Millisecond)
		Expect(deb.Fire(clock.Now())).To(BeTrue())
	})

	It("keeps a pending deadline across a visibility pause", func() {
		deb.Bump(clock.Now())

		clock.Advance(10 * time.Second)
		Expect(deb.Fire(clock.Now())).To(BeTrue())
	})
})

var _ = Describe("Phase", func() {
	It("advances by a fixed step per accepted frame", func() {
		phase := anim.NewPhase(0.016)

		for i := 0; i < 10; i++ {
			phase.Advance()
		}
		Expect(phase.Value()).To(BeNumerically("~", 0.16, 1e-12))
	})

	It("rewinds to zero on reset", func() {
		phase := anim.NewPhase(0.016)
		phase.Advance()
		phase.Reset()
		Expect(phase.Value()).To(BeZero())
	})
})
