package mui

import (
	"time"
)

type UnixTimeStamp struct {
	time.Time
}

func (self *UnixTimeStamp) String() string {
	result, _ := self.UTC().MarshalText()
	return string(result)
}

func NewUnixTimeStamp(timestamp uint32) *UnixTimeStamp {
	return &UnixTimeStamp{time.Unix(int64(timestamp), 0)}
}
