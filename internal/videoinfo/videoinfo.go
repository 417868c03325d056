// Package videoinfo defines the video description the evaluator resolves
// time expressions against.
package videoinfo

import "math"

// Unspecified is the sentinel start_time value meaning "the host didn't
// know the stream's start offset" (spec §3, §6: "start_time == INT64_MIN
// is the unspecified sentinel").
const Unspecified int64 = math.MinInt64

// Info mirrors the C ABI's VideoInfo: fps, the stream timebase as a
// rational (TimeBaseNum/TimeBaseDen), the stream's start offset, and its
// duration, both already expressed in stream timebase units.
type Info struct {
	FPS         float64
	TimeBaseNum int64
	TimeBaseDen int64
	StartTime   int64
	Duration    int64
}

// StartOffset returns 0 when StartTime is Unspecified, else StartTime.
func (v Info) StartOffset() int64 {
	if v.StartTime == Unspecified {
		return 0
	}
	return v.StartTime
}

// timeBase returns the stream timebase as a float64 ratio (den/num),
// used to convert a duration expressed in seconds into stream-timebase
// integer units.
func (v Info) timeBase() float64 {
	return float64(v.TimeBaseDen) / float64(v.TimeBaseNum)
}

// FrameToTS converts a frame index to a stream timestamp:
// round_toward_zero((n/fps) * (tb_den/tb_num)) + start_offset.
func (v Info) FrameToTS(n uint64) int64 {
	seconds := float64(n) / v.FPS
	return int64(math.Trunc(seconds*v.timeBase())) + v.StartOffset()
}

// MsToTS converts a millisecond count to a stream timestamp:
// round_toward_zero((ms/1000) * (tb_den/tb_num)) + start_offset.
func (v Info) MsToTS(ms int64) int64 {
	seconds := float64(ms) / 1000.0
	return int64(math.Trunc(seconds*v.timeBase())) + v.StartOffset()
}
