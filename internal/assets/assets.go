package assets

// DefaultStyleName is the built-in stylesheet used when none is configured.
const DefaultStyleName = "notebook"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in CSS style by name.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// AvailableStyles lists the built-in style names, sorted.
func AvailableStyles() []string {
	return defaultLoader.Names()
}
