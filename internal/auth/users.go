package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// User can log in with a password; Principal is the tenant every row the
// user creates is stamped with.
type User struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
	Principal    string `toml:"principal"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Users map[string]User

type usersFile struct {
	Users []User `toml:"users"`
}

// LoadUsers reads the [[users]] entries of a TOML file.
func LoadUsers(path string) (Users, error) {
	var f usersFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	return NewUsers(f.Users...)
}

func NewUsers(list ...User) (Users, error) {
	users := Users{}
	for _, u := range list {
		u.Username = strings.TrimSpace(u.Username)
		if u.Username == "" || u.PasswordHash == "" {
			return nil, errors.New("user without username or password hash")
		}
		principal, err := uuid.Parse(u.Principal)
		if err != nil {
			return nil, fmt.Errorf("user %s: invalid principal: %w", u.Username, err)
		}
		u.Principal = principal.String()
		if _, ok := users[u.Username]; ok {
			return nil, fmt.Errorf("user %s defined twice", u.Username)
		}
		users[u.Username] = u
	}
	return users, nil
}
