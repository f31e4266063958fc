package clock

import "time"

var ExampleTime = time.Date(2024, 2, 27, 23, 58, 59, 0, time.UTC)

type Nower interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time {
	return time.Now()
}

func New() Nower {
	return system{}
}

// Fixed 测试使用
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
