package sim

// Clock is the simulation heartbeat. It only moves forward, one tick at a time.
type Clock struct {
	time int64
}

// Time returns the current tick.
func (c *Clock) Time() int64 {
	return c.time
}

// Tick advances the clock by exactly one unit and returns the new time.
func (c *Clock) Tick() int64 {
	c.time++
	return c.time
}
