package model

import (
	"github.com/malkit/malkit/codec"
	"github.com/malkit/malkit/xmlmap"
)

// User is the account behind a set of credentials.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

var userSchema = xmlmap.NewSchema("user",
	xmlmap.Read("id", codec.Text, func(u *User) *string { return &u.ID }),
	xmlmap.Read("username", codec.Text, func(u *User) *string { return &u.Username }),
)
