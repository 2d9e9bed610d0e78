package engine

// Run drives the pad: one blocking event read per iteration, each
// event fully processed and flushed before the next read. Returns
// when a quit intent arrives or the screen is finalized under it by
// Shutdown.
func (c *Context) Run() {
	c.RedrawAll()
	c.Renderer.Show()

	for {
		ev := c.Screen.PollEvent()
		if ev == nil {
			// Screen finalized, interrupt-driven shutdown
			return
		}
		in := c.machine.Process(ev)
		if in == nil {
			continue
		}
		if !c.Apply(in) {
			return
		}
		c.Renderer.Show()
	}
}
