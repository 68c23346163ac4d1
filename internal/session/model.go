package session

// Identity is the signed-in shopper. It is a display flag only; nothing
// authorizes against it.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
