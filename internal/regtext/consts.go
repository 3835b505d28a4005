package regtext

const (
	// ============================================================================
	// Value Type Tags
	// ============================================================================

	// ValueTagDword identifies a 32-bit integer value in .reg format.
	ValueTagDword = "dword"

	// ValueTagHex1 identifies a REG_SZ stored as hex(1): UTF-16LE bytes.
	ValueTagHex1 = "hex(1)"

	// ============================================================================
	// Scanner Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the line scanner.
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ============================================================================
	// UTF-16 Encoding
	// ============================================================================

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes.
	UTF16CodeUnitSize = 2
)
