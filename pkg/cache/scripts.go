package cache

import (
	"github.com/go-redis/redis/v8"
)

// Lua scripts for Redis operations
var deleteByPrefixScript *redis.Script

func init() {
	// Enumerate and delete every key matching the prefix. SCAN keeps the
	// script cooperative on large keyspaces; the cursor loop runs to
	// completion so no matching key survives.
	deleteByPrefixScript = redis.NewScript(`
		local cursor = "0"
		local deleted = 0
		repeat
			local result = redis.call('SCAN', cursor, 'MATCH', ARGV[1], 'COUNT', 200)
			cursor = result[1]
			for _, key in ipairs(result[2]) do
				redis.call('DEL', key)
				deleted = deleted + 1
			end
		until cursor == "0"
		return deleted
	`)
}
