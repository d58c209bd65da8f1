package addressbook

// Cursor walks a snapshot of a Book once. After it is exhausted it stays
// exhausted; call Book.Cursor for a new pass.
type Cursor struct {
	records []*Record
	pos     int
}

// Next returns the next record, or false once all records were returned.
func (c *Cursor) Next() (*Record, bool) {
	if c.pos >= len(c.records) {
		return nil, false
	}
	r := c.records[c.pos]
	c.pos++
	return r, true
}

// Remaining reports how many records Next will still return.
func (c *Cursor) Remaining() int {
	return len(c.records) - c.pos
}
