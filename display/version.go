package display

import "fmt"

// BuildVersion formats the tool's name and version as "name vX.Y.Z".
// The name is omitted when empty.
func BuildVersion(meta Meta) string {
	name := meta.Name
	if name != "" {
		name = name + " "
	}
	return fmt.Sprintf("%sv%s", name, meta.Version)
}
