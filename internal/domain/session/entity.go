package session

// Session is the single optional authenticated-user record. Identity is an
// opaque string; no credential is verified anywhere in this system.
type Session struct {
	Identity string `json:"identity"`
}
