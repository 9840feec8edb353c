package models

import "time"

// Session is the server-held identity issued on login. It is a snapshot of
// the user at login time, keyed by an opaque token the client never gets to
// inspect or forge.
type Session struct {
	UserID    int64     `msgpack:"user_id" json:"user_id"`
	OrgID     int64     `msgpack:"org_id" json:"org_id"`
	Role      Role      `msgpack:"role" json:"role"`
	FullName  string    `msgpack:"full_name" json:"full_name"`
	CreatedAt time.Time `msgpack:"created_at" json:"created_at"`
}
