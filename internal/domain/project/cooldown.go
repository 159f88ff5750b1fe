package project

// StartCooldown raises the cooldown flag and schedules it to drop after the
// configured period. A second call opens a fresh window; the earlier timer
// then has no effect.
func (s *Store) StartCooldown() {
	s.mu.Lock()
	gen := s.raiseCooldownLocked()
	s.mu.Unlock()

	s.scheduleCooldownEnd(gen)
}

// TryStartCooldown starts the cooldown only when neither the cooldown nor a
// creation is active. Check and start happen under one lock, so of two
// concurrent callers exactly one succeeds.
func (s *Store) TryStartCooldown() error {
	s.mu.Lock()
	switch {
	case s.creating:
		s.mu.Unlock()
		return ErrCreateInProgress
	case s.cooldown:
		s.mu.Unlock()
		return ErrCoolingDown
	}
	gen := s.raiseCooldownLocked()
	s.mu.Unlock()

	s.scheduleCooldownEnd(gen)
	return nil
}

// CoolingDown reports whether the guard is active.
func (s *Store) CoolingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cooldown
}

func (s *Store) raiseCooldownLocked() uint64 {
	s.cooldown = true
	s.cooldownGen++
	return s.cooldownGen
}

func (s *Store) scheduleCooldownEnd(gen uint64) {
	s.logger.Debug("cooldown started", "period", s.cooldownD)
	s.publish()
	s.clock.AfterFunc(s.cooldownD, func() { s.endCooldown(gen) })
}

func (s *Store) endCooldown(gen uint64) {
	s.mu.Lock()
	if gen != s.cooldownGen || !s.cooldown {
		s.mu.Unlock()
		return
	}
	s.cooldown = false
	s.mu.Unlock()

	s.logger.Debug("cooldown ended")
	s.publish()
}
