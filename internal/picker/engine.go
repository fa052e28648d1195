package picker

import "slices"

// TrySpin runs one full spin and blocks until the reel has settled.
//
// It returns ErrEmptyPool before any hook runs (or after OnSpinStart if the
// hook emptied the pool), and ErrMissingReel after OnSpinStart has already fired. OnSpinEnd only fires on success.
// Panics raised by hooks are not recovered.
func (p *Picker) TrySpin() error {
	p.setPhase(PhaseValidating)
	if len(p.pool) == 0 {
		p.setPhase(PhaseAborted)
		p.log.Error().Err(ErrEmptyPool).Msg("no names to spin")
		return ErrEmptyPool
	}

	p.setPhase(PhasePreSpinHook)
	notify(p.onSpinStart)

	if p.reel == nil || !p.reel.Attached() {
		p.setPhase(PhaseAborted)
		p.log.Error().Err(ErrMissingReel).Msg("cannot spin without a reel")
		return ErrMissingReel
	}

	// the start hook may have replaced the pool
	if len(p.pool) == 0 {
		p.setPhase(PhaseAborted)
		p.log.Error().Err(ErrEmptyPool).Msg("no names to spin")
		return ErrEmptyPool
	}

	p.setPhase(PhaseShuffling)
	order := Shuffle(p.pool, p.rng)

	p.setPhase(PhaseRendering)
	p.reel.Clear()
	p.reel.Mount(order)

	p.setPhase(PhaseAnimating)
	anim := p.reel.Animate(p.planner.Plan(len(order)))
	<-anim.Finished()
	// some drivers drop the last keyframe once finished
	anim.Finish()

	p.setPhase(PhaseSettling)
	winner := order[len(order)-1]
	p.log.Info().Strs("order", order).Str("winner", winner).Msg("spin settled")
	if p.removeWinner {
		if i := slices.Index(p.pool, winner); i >= 0 {
			p.pool = slices.Delete(p.pool, i, i+1)
		}
		p.log.Info().Strs("remaining", p.pool).Msg("winner removed from pool")
	}
	p.reel.TrimToLast()

	p.setPhase(PhasePostSpinHook)
	notify(p.onSpinEnd)
	p.setPhase(PhaseIdle)
	return nil
}

// Spin reports whether a spin completed.
func (p *Picker) Spin() bool { return p.TrySpin() == nil }

// SpinAsync starts a spin and delivers its result on the returned channel.
// There is no way to stop it; dropping the channel leaves the spin running.
func (p *Picker) SpinAsync() <-chan bool {
	done := make(chan bool, 1)
	go func() {
		done <- p.Spin()
	}()
	return done
}
