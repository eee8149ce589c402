package selection

// Auto-submission keeps fast combo play fluid: once the path is long
// enough, a quiet period submits it without waiting for pointer-up. The
// debounce is a plain countdown driven by Advance, so it lives and dies
// on the same tick thread as every other state change.

// restartAutoSubmit (re)arms the debounce after a path change. It runs
// only during combo play with a long-enough path; any other state change
// disarms it instead.
func (s *Session) restartAutoSubmit() {
	if s.comboLevel > 0 && s.interactive && len(s.path) >= s.cfg.MinAutoSubmitLen {
		s.autoPending = true
		s.autoLeft = s.cfg.AutoSubmitDelay
		return
	}
	s.cancelAutoSubmit()
}

// cancelAutoSubmit disarms the debounce entirely.
func (s *Session) cancelAutoSubmit() {
	s.autoPending = false
	s.autoLeft = 0
}

func (s *Session) advanceAutoSubmit(dt float64) {
	if !s.autoPending {
		return
	}
	// Re-check the arming conditions every tick: the session may have
	// left SELECTING or the combo may have ended since the timer was set.
	if s.state != StateSelecting || s.comboLevel == 0 || len(s.path) < s.cfg.MinAutoSubmitLen {
		s.cancelAutoSubmit()
		return
	}

	s.autoLeft -= dt
	if s.autoLeft > 0 {
		return
	}

	// Fires with the pointer still down: submit the path as it stands and
	// end the gesture, so the still-touching finger cannot keep extending
	// an already-submitted path.
	s.submit()
}
