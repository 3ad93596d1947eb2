// Package kernel provides the shared domain primitives of the coordination
// engine: the UUID identity value object, the GeoPoint coordinate, and the
// timestamped LocationReport sample.
//
// All three are immutable value objects with constructor-enforced invariants;
// zero values fail Validate. They carry no behavior beyond what every
// aggregate needs, which keeps the aggregate packages free of cross-imports.
package kernel
