package errors

import (
	"strings"
)

// ValidateOutputName validates an output file name for HTML documents.
// The name must consist of at least two dot-separated parts and the final
// part must be "html". Validation happens before any file is created.
func ValidateOutputName(name string) error {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return New(ErrCodeInvalidExtension, "invalid file type for %q", name)
	}
	if parts[len(parts)-1] != "html" {
		return New(ErrCodeInvalidExtension, "%q is not a valid html file", name)
	}
	return nil
}

// Resource-loading modes for the generated document.
const (
	ResourcesLocal  = "local"   // assets copied to a lib/ directory next to the output
	ResourcesInline = "in_line" // assets inlined into the document
	ResourcesRemote = "remote"  // assets referenced by pinned CDN URLs
)

// ValidateResourceMode checks that mode is one of the supported
// resource-loading modes: "local", "in_line" or "remote".
func ValidateResourceMode(mode string) error {
	switch mode {
	case ResourcesLocal, ResourcesInline, ResourcesRemote:
		return nil
	}
	return New(ErrCodeInvalidResourceMode,
		"resource mode %q not in [local, in_line, remote]", mode)
}

// smoothTypes is the set of curve styles accepted by the edge smoothing
// setter. These names are defined by the front-end visualization library.
var smoothTypes = map[string]bool{
	"dynamic":       true,
	"continuous":    true,
	"discrete":      true,
	"diagonalCross": true,
	"straightCross": true,
	"horizontal":    true,
	"vertical":      true,
	"curvedCW":      true,
	"curvedCCW":     true,
	"cubicBezier":   true,
}

// ValidateSmoothType checks that t is one of the enumerated edge curve styles.
func ValidateSmoothType(t string) error {
	if !smoothTypes[t] {
		return New(ErrCodeInvalidSmoothType,
			"smooth type %q is not a recognized curve style", t)
	}
	return nil
}
