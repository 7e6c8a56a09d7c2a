package cordic

// fastBitOps reports whether the hardware-accelerated path for
// building the hyperbolic repeat schedule (a flat bit-set instead of a
// map) is available. Set once at init time by feature_amd64.go or
// feature_generic.go.
var fastBitOps bool
