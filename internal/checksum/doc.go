// Package checksum hashes SQL documents two ways:
//
//   - Raw checksum: hash of the exact bytes (detects every change)
//   - Normalized checksum: hash of the token sequence with comments removed
//     and keywords and identifiers lowercased (identical for documents that
//     differ only in layout)
//
// Comparing both tells a formatting-only difference apart from a change in
// content.
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(content)
//	normalized := calculator.CalculateNormalized(content)
package checksum
