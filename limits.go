package mui

import "sync/atomic"

const (
	MAX_RESOURCE_BLOCKS = 1000
	MAX_MESSAGE_LENGTH  = 64 * 1024
)

var (
	MAX_MESSAGES int64 = 100000
)

func SetMessageLimit(limit int64) {
	atomic.SwapInt64(&MAX_MESSAGES, limit)
}

func GetMessageLimit() int64 {
	return atomic.LoadInt64(&MAX_MESSAGES)
}
