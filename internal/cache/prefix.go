package cache

import "fmt"

type Prefix string

const (
	Sessions Prefix = "otp_sessions"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
