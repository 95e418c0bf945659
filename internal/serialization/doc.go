// Package serialization saves and restores knowledge-base snapshots.
//
// Snapshots use the SafeTensors layout so standard tooling can inspect them:
//
//	Format Structure:
//	  [8 bytes: header size (uint64 LE)]
//	  [header: JSON object]
//	  [tensor data: float64 little-endian, row-major]
//
// Every relation is stored as an F64 tensor named "relation.<name>" with shape
// [n, n], written in name order. The "__metadata__" entry carries the format
// name and version, the fact vocabulary (JSON array, index order), a random
// snapshot id and the SHA-256 of the data section.
//
// Example usage:
//
//	id, err := serialization.WriteFile("kb.safetensors", base)
//	restored, header, err := serialization.ReadFile("kb.safetensors")
package serialization
