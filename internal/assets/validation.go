package assets

import "fmt"

// MaxAssetNameLength bounds style names.
const MaxAssetNameLength = 64

// ValidateAssetName checks that a style name is safe to use as a filename:
// 1 to MaxAssetNameLength ASCII letters, digits, hyphens or underscores.
// Anything else (separators, dots, traversal) is ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, MaxAssetNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
