package redis

import "fmt"

// Key prefix for all statboard data
const keyPrefix = "statboard"

// profileKey returns the Redis key for a cached profile
func profileKey(uuid string) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, uuid)
}
