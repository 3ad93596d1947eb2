// Package courier contains the Courier aggregate.
//
// A courier is a registered delivery person tied to a user account. The
// aggregate tracks two things only: whether the courier is on shift and the
// last location report. Shift toggles are idempotent, and location reports
// are accepted as-is from the courier app.
package courier
