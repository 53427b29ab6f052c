// accel_ref.go - Unaccelerated stub.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// No accelerated backend is implemented yet; initHardwareAcceleration is
// the single point where one would be wired in for a given architecture.
func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
