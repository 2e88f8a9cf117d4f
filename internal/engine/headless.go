package engine

import (
	"time"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/registry"
)

// Summary describes a finished headless run.
type Summary struct {
	Lives   int
	Scores  []int
	High    int
	Average float64
	Ticks   int
}

// lifeCounter collects finished lives and forwards them to the next recorder.
type lifeCounter struct {
	scores []int
	next   LifeRecorder
}

func (l *lifeCounter) RecordLife(life core.LifeRecord) error {
	l.scores = append(l.scores, life.Score)
	if l.next != nil {
		return l.next.RecordLife(life)
	}
	return nil
}

// RunHeadless plays game on the autopilot against a manual clock until lives
// lives have ended or maxTicks ticks have run, whichever comes first. A
// maxTicks of zero means no tick limit. The game must already be Reset.
func RunHeadless(game registry.Game, lives, maxTicks int, opts Options) Summary {
	clock := NewManualClock(time.Unix(0, 0))
	opts.Clock = clock
	counter := &lifeCounter{next: opts.Recorder}
	opts.Recorder = counter

	s := NewScheduler(game, opts)
	s.SetAutopilot(true)
	s.Start()
	defer s.Stop()

	ticks, last := 0, s.State().Tick
	for len(counter.scores) < lives && (maxTicks <= 0 || ticks < maxTicks) {
		if clock.Pending() == 0 {
			break // halted
		}
		clock.Advance(s.Interval())
		cur := s.State().Tick
		if cur >= last {
			ticks += int(cur - last)
		} else {
			ticks += int(cur) // new life
		}
		last = cur
	}

	st := s.State()
	return Summary{
		Lives:   len(counter.scores),
		Scores:  counter.scores,
		High:    st.HighScore,
		Average: st.Average,
		Ticks:   ticks,
	}
}
