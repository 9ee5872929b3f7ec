// Package parcel contains the Parcel aggregate and its value objects: the
// custody status state machine, the size and service tiers that feed pricing,
// the special handling tags, and the customer profile captured at intake.
//
// The aggregate enforces the lifecycle rules: which role may trigger which
// transition, which transitions are adjacent, and that the billing cost
// quoted at intake never changes afterwards.
package parcel
