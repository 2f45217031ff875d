package redis

import "fmt"

// Key prefix for all roster data
const keyPrefix = "gqldemo"

// playersKey returns the Redis key of the HASH holding id -> player JSON
func playersKey() string {
	return fmt.Sprintf("%s:players", keyPrefix)
}
