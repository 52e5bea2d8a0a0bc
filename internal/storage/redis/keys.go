package redis

import (
	"fmt"

	"github.com/ajmcleod/hangduel/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "hangduel"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// wordPoolKey returns the Redis key for the candidate-word list
func wordPoolKey() string {
	return fmt.Sprintf("%s:word_pool", keyPrefix)
}

// summariesKey returns the Redis key for the match summary list
func summariesKey() string {
	return fmt.Sprintf("%s:match_summaries", keyPrefix)
}
