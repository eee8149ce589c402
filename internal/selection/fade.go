package selection

// The fade removes submitted cells from view one at a time, first-selected
// first, after an initial hold. It is purely presentational state: a new
// pointer-down abandons it immediately so rapid re-selection is never
// blocked (see handleDown).

func (s *Session) clearFade() {
	s.fading = nil
	s.fadeLeft = 0
}

func (s *Session) advanceFade(dt float64) {
	if s.state != StateFading {
		return
	}
	if len(s.fading) == 0 {
		s.finishFade()
		return
	}

	s.fadeLeft -= dt
	for s.fadeLeft <= 0 && len(s.fading) > 0 {
		cell := s.fading[0]
		s.fading = s.fading[1:]
		if s.OnFadeCellCleared != nil {
			s.OnFadeCellCleared(cell)
		}
		s.fadeLeft += s.fadeDelay
	}

	if len(s.fading) == 0 {
		s.finishFade()
	}
}

func (s *Session) finishFade() {
	s.fading = nil
	s.fadeLeft = 0
	s.state = StateIdle
	if s.OnFadeComplete != nil {
		s.OnFadeComplete()
	}
}
