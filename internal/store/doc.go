// Package store persists dispatch traces in SQLite.
//
// A run row records which scenario executed, with which style and seed;
// event rows record the observations in sequence order. Content-addressed
// event ids are computed at write time so a stored trace can be compared
// against a fresh run byte for byte.
package store
