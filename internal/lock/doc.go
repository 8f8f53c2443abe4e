// Package lock keeps two gitpix runs from writing to the same repository at
// once.
//
// A Locker holds an exclusive, non-blocking flock on a file in the system
// temp directory named after a hash of the repository path:
//
//	/tmp/gitpix-<repo-hash>.lock
//
// The file contains the owner's PID so a refused run can say who is holding
// the lock. The flock is dropped by the kernel when the owner exits, so a
// file left behind by a crashed run is reclaimed on the next Acquire;
// PreviousPID reports the PID that was found in it.
//
// Only Unix-like systems are supported.
package lock
