package runner

// tickPlaying advances one frame of a chapter. The order matters: scroll,
// move the runners, check the goal, collect pickups, check for death and
// only then spawn new entities at the right edge.
func (g *Game) tickPlaying(downHeld bool) {
	now := g.playNow()
	g.elapsedMs = now - g.chapterStart
	g.elapsedSeconds = int(g.elapsedMs / 1000)

	active := g.relay.Active()
	g.accel = g.pacing.Speed(g.chapter, g.elapsedSeconds)
	g.speed = g.accel * active.SpeedMultiplier(g.cfg.Effects.SpeedMultiplier)

	g.world.Scroll(g.speed, g.cfg.Spawner.SpeedLineFactor)
	for _, p := range g.relay.Runners() {
		p.Update(now, g.speed, downHeld, g.world.Platforms, g.world.Pits)
	}

	// Reaching the goal wins even if the runner died this same frame.
	if g.pacing.GoalReached(g.elapsedSeconds) {
		g.completeChapter(active)
		return
	}

	if !active.Dead {
		g.collectPickups(active, now)
	}

	hit := !active.Invulnerable() && overlapsAny(active.Rect, g.world.Obstacles)
	if (active.Dead || hit) && !active.Reviving {
		g.runnerDown(active)
		return
	}

	g.spawner.Update(now, g.chapter, g.accel, g.world)
	if active.Effect.Kind == EffectSpeedBoost || active.Reviving {
		g.spawner.SpeedLine(g.world)
	}
}

func (g *Game) collectPickups(active *Player, now int64) {
	for range takeOverlapping(active.Rect, &g.world.Collectibles) {
		g.score += g.cfg.Collectible.Score
		g.chapterStart -= g.cfg.Collectible.TimeBonusMs
		g.audio.Pickup()
	}
	for _, it := range takeOverlapping(active.Rect, &g.world.Items) {
		active.ApplyItem(it.Item, now)
		g.audio.Pickup()
		g.logger.Debug("item picked", "item", it.Item, "character", active.Character)
	}
}

// runnerDown grades the death of the active runner and either offers the
// relay or ends the run.
func (g *Game) runnerDown(active *Player) {
	first := active == g.relay.First()
	active.MarkDead()
	g.finisher = active.Character

	v := g.grader.Assess(g.chapter, g.elapsedSeconds, first, false)
	g.grade = v.Grade
	g.logger.Debug("runner down",
		"character", active.Character,
		"chapter", g.chapter,
		"elapsed", g.elapsedSeconds,
		"grade", string(g.grade),
	)

	if v.Next == StateRelayPrompt {
		g.promptStart = g.now
		g.choice = ChoiceYes
		g.setState(StateRelayPrompt)
		return
	}
	g.endRun()
}

// completeChapter grades a cleared chapter and unlocks the next one.
func (g *Game) completeChapter(active *Player) {
	first := active == g.relay.First()
	v := g.grader.Assess(g.chapter, g.elapsedSeconds, first, true)
	g.grade = v.Grade
	g.finisher = active.Character

	if v.Unlock && g.progress.Unlock(g.chapter) {
		g.logger.Info("chapter unlocked", "chapter", g.progress.MaxUnlocked)
	}
	g.emitOutcome(true)

	if v.Next == StateChapterSelect {
		g.relay = nil
		g.world.Clear()
		g.enterChapterSelect()
		return
	}
	g.setState(v.Next)
}
