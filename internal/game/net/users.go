package net

import (
	"net/url"

	"github.com/L1VER1337/block/internal/protocol"
)

// CreateUser creates the user for this identity, or returns the existing
// record when the telegram id is already known.
func CreateUser(req protocol.UserCreate) (protocol.User, error) {
	return PostJSON[protocol.UserCreate, protocol.User](req, "/api/users")
}

// User fetches a user record by server id.
func User(id string) (protocol.User, error) {
	return GetJSON[protocol.User]("/api/users/" + url.PathEscape(id))
}

// UpdateUser updates profile fields and returns the fresh record.
func UpdateUser(id string, req protocol.UserUpdate) (protocol.User, error) {
	return PutJSON[protocol.UserUpdate, protocol.User](req, "/api/users/"+url.PathEscape(id))
}
