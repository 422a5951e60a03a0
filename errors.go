package ledframe

import "errors"

// Error taxonomy for the preparation pipeline and runtime. Preparation
// errors abort the image being processed and are reported to the caller;
// runtime errors are isolated per slideshow cycle and never terminate
// the loop. Only configuration errors at startup are fatal.
var (
	// ErrInvalidImage indicates a malformed or zero-size source image.
	ErrInvalidImage = errors.New("invalid source image")

	// ErrInvalidConfig indicates an out-of-range tunable. Configuration
	// is validated at startup; values are never silently clamped.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPaletteSize indicates a requested palette size outside
	// [MinPaletteSize, MaxPaletteSize].
	ErrInvalidPaletteSize = errors.New("palette size out of range")

	// ErrCorruptArtifact indicates a malformed binary artifact record:
	// bad magic or version, truncated data, length mismatches, or an
	// index referencing past the end of the palette.
	ErrCorruptArtifact = errors.New("corrupt artifact")

	// ErrFetchFailure is a transient, collaborator-reported failure to
	// obtain artifact bytes for a reference.
	ErrFetchFailure = errors.New("fetch failure")
)
