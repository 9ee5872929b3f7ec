// Package billing contains the settlement Record created exactly once per
// parcel when delivery is confirmed. The ledger owning these records
// enforces at-most-once settlement per tracking number.
package billing
