package render

// Entry is one placeholder binding.
type Entry struct {
	Key   string
	Value string
}

// Context is the flat namespace the template is rendered against.
// Entries keep their insertion order; setting an existing key
// overwrites the value in place, so the later source wins while the
// original position is preserved. Overwrites are recorded so the
// orchestrator can surface them: colliding keys across collectors
// are legal but almost always a template-design smell.
type Context struct {
	entries    []Entry
	index      map[string]int
	collisions []string
}

func NewContext() *Context {
	return &Context{index: make(map[string]int)}
}

// Set binds key to value, overwriting any earlier binding.
func (c *Context) Set(key, value string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Value = value
		c.collisions = append(c.collisions, key)
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Value: value})
}

// SetAll binds every entry in order.
func (c *Context) SetAll(entries []Entry) {
	for _, e := range entries {
		c.Set(e.Key, e.Value)
	}
}

// Get returns the bound value, if any.
func (c *Context) Get(key string) (string, bool) {
	i, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.entries[i].Value, true
}

// Len is the number of distinct keys bound.
func (c *Context) Len() int {
	return len(c.entries)
}

// Entries returns the bindings in insertion order.
func (c *Context) Entries() []Entry {
	return c.entries
}

// Collisions lists every key that was overwritten, in overwrite
// order, duplicates included.
func (c *Context) Collisions() []string {
	return c.collisions
}
