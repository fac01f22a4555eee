package constants

// FileTypes are the object extensions the pipeline will register and process
// (lowercase, without '.').
var FileTypes = []string{"pdf", "txt", "md"}

// IsSupportedFileType reports whether ext (lowercase, no dot) is processable.
func IsSupportedFileType(ext string) bool {
	for _, t := range FileTypes {
		if t == ext {
			return true
		}
	}
	return false
}
