package attributes

// ChangeSet remembers the load-time value of every changed field.
type ChangeSet struct {
	before map[string]any
	order  []string
}

func newChangeSet() *ChangeSet {
	return &ChangeSet{before: make(map[string]any)}
}

// record keeps only the first value reported for a name.
func (c *ChangeSet) record(name string, before any) {
	if _, ok := c.before[name]; ok {
		return
	}
	c.before[name] = before
	c.order = append(c.order, name)
}

func (c *ChangeSet) forget(name string) {
	if _, ok := c.before[name]; !ok {
		return
	}
	delete(c.before, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
}

// Has reports whether name changed since load.
func (c *ChangeSet) Has(name string) bool {
	_, ok := c.before[name]
	return ok
}

// Before returns the load-time value of a changed field.
func (c *ChangeSet) Before(name string) (any, bool) {
	v, ok := c.before[name]
	return v, ok
}

// Names lists changed fields in the order they first changed.
func (c *ChangeSet) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of changed keys.
func (c *ChangeSet) Len() int { return len(c.order) }

// Attributes maps changed fields to their load-time values.
func (c *ChangeSet) Attributes() map[string]any {
	out := make(map[string]any, len(c.before))
	for k, v := range c.before {
		out[k] = v
	}
	return out
}

// Clear forgets every recorded change.
func (c *ChangeSet) Clear() {
	c.before = make(map[string]any)
	c.order = nil
}
