package tilekit

// eventTimeoutTicks is the fixed per-iteration timeout passed to the host's
// GetEvent, in the same tick unit GetMonotonicTime reports.
const eventTimeoutTicks Tick = 100

// Start runs the event loop until Stop or Quit is called (directly, or via
// a QUIT event from the host) and returns the result passed to whichever
// call ended it. Start is re-entrant: a widget callback may call Start
// again to run a nested loop (most commonly from an editor), in which case
// Stop on the inner loop leaves the outer loop running, while Quit cascades
// out to every enclosing loop.
func (c *Context) Start() int {
	if c.runFlag == nil {
		c.quitFlag = false
	}

	prevRunFlag := c.runFlag
	run := true
	c.runFlag = &run
	defer func() { c.runFlag = prevRunFlag }()

	// The display must reflect the scene built before this loop was
	// entered, before the first event is awaited.
	c.needClean = true

	for run && !c.quitFlag {
		if c.needClean {
			c.clean()
			c.needClean = false
		}

		ev, ok := c.host.GetEvent(eventTimeoutTicks)
		if !ok {
			continue
		}

		triggered := invalidHandle

		switch ev.Kind {
		case EventQuit:
			c.Quit(0)
		case EventPress:
			hit := c.hitTest(ev.X, ev.Y)
			if hit != invalidHandle && c.widgets[hit].State == Enabled {
				c.setPressed(hit)
				c.needClean = true
			}
		case EventRelease:
			if c.pressed != invalidHandle {
				hit := c.hitTest(ev.X, ev.Y)
				if hit == c.pressed {
					triggered = c.pressed
				}
				c.setPressed(invalidHandle)
				c.needClean = true
			}
		}

		if triggered != invalidHandle {
			w := &c.widgets[triggered]
			if w.Callback != nil {
				cb, ud := w.Callback, w.UserData
				cb(c, triggered, ud)
			}
		}
	}

	return c.lastResult
}

// Stop ends the innermost running loop, if any, recording result as the
// value that loop's Start call returns. It never affects an outer loop.
func (c *Context) Stop(result int) {
	if c.runFlag == nil {
		return
	}
	c.lastResult = result
	*c.runFlag = false
}

// Quit ends the innermost loop exactly as Stop does, and additionally sets
// the shared quit flag so every enclosing loop also exits at its next
// iteration check. Only the outermost Start call clears the quit flag, on
// entry.
func (c *Context) Quit(result int) {
	c.Stop(result)
	c.quitFlag = true
}
