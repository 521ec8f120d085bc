package bigcodec

// ZigzagEncode folds the sign of v into the low bit so that values of small
// magnitude, positive or negative, map to small unsigned integers:
//
//	 0 -> 0
//	-1 -> 1
//	 1 -> 2
//	-2 -> 3
//	...
//	math.MaxInt64 -> math.MaxUint64 - 1
//	math.MinInt64 -> math.MaxUint64
func ZigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// ZigzagDecode is the inverse of ZigzagEncode.
func ZigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
