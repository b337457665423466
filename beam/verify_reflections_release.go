//go:build !verify_reflections
// +build !verify_reflections

package beam

// Empty stub that will be optimized out in release builds.
func verifyReflection(inx, iny, nx, ny, outx, outy float32) {
}
