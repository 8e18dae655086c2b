package core

// OpenRowRegistry enforces the "at most one row open" product policy on the
// collaborator's side. The controllers stay independent; the registry closes
// the previously open row through its public Close before recording the next
// one, so there is no hidden coupling between row instances.
type OpenRowRegistry struct {
	rows   map[string]*RevealController
	openID string
}

func NewOpenRowRegistry() *OpenRowRegistry {
	return &OpenRowRegistry{rows: make(map[string]*RevealController)}
}

// Register adds or replaces the controller for a row ID.
func (r *OpenRowRegistry) Register(id string, c *RevealController) {
	r.rows[id] = c
}

// Remove forgets a row, resetting its controller so a reused slot starts
// closed.
func (r *OpenRowRegistry) Remove(id string) {
	if c, ok := r.rows[id]; ok {
		c.Reset()
	}
	delete(r.rows, id)
	if r.openID == id {
		r.openID = ""
	}
}

// WillOpen closes whichever row is currently open (if any) and records id as
// the next open row. Call it when a row's drag is claimed toward open or
// when it commits open.
func (r *OpenRowRegistry) WillOpen(id string) {
	if r.openID != "" && r.openID != id {
		if prev, ok := r.rows[r.openID]; ok {
			prev.Close()
		}
	}
	r.openID = id
}

// DidClose clears the record if id was the open row.
func (r *OpenRowRegistry) DidClose(id string) {
	if r.openID == id {
		r.openID = ""
	}
}

// OpenID returns the currently open row, if any.
func (r *OpenRowRegistry) OpenID() (string, bool) {
	return r.openID, r.openID != ""
}

// Controller returns the registered controller for id.
func (r *OpenRowRegistry) Controller(id string) (*RevealController, bool) {
	c, ok := r.rows[id]
	return c, ok
}
