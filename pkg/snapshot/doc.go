// Package snapshot names snapshots and indexes the snapshots of a share.
//
// A snapshot is a directory named after its UTC creation time using the
// layout Samba's shadow_copy2 module expects (@GMT-YYYY.MM.DD-HH.MM.SS).
// Every field is fixed width and zero padded, so sorting names
// lexicographically sorts snapshots chronologically. The index relies on
// that: it never parses timestamps to order entries.
package snapshot
