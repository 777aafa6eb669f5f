package music

import "sync"

// Credential is the access token plus its authorized flag. It is the single
// piece of shared mutable state in the adapter; every read of the token and
// every clear goes through the same lock so a playlist fetch cannot race a
// deauthorization.
type Credential struct {
	mu         sync.RWMutex
	token      string
	authorized bool
}

// Set stores the token and marks the credential authorized.
func (c *Credential) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.authorized = token != ""
}

// Clear wipes the token and flag. Safe to call repeatedly.
func (c *Credential) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.authorized = false
}

// Token returns the current token and whether the credential is authorized.
func (c *Credential) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.authorized
}

// Authorized reports whether a valid token is held.
func (c *Credential) Authorized() bool {
	_, ok := c.Token()
	return ok
}
