package buckets

import "fmt"

// Provider produces a slice of file paths when a collection is resolved.
type Provider func() ([]string, error)

// FileCollection is an ordered, lazy aggregation of file paths. Providers
// are appended during the configuration phase and only evaluated on the
// first Resolve call; the flattened result is cached after that.
type FileCollection struct {
	providers []Provider
	resolved  []string
	done      bool
}

// Append adds a provider to the collection. Appending after the collection
// has been resolved is a programmer error.
func (fc *FileCollection) Append(p Provider) {
	if fc.done {
		panic("buckets: append to already-resolved file collection")
	}
	fc.providers = append(fc.providers, p)
}

// Resolve flattens all providers into one ordered file list. Evaluation
// happens exactly once; later calls return the cached result.
func (fc *FileCollection) Resolve() ([]string, error) {
	if fc.done {
		return fc.resolved, nil
	}

	var files []string
	for i, p := range fc.providers {
		part, err := p()
		if err != nil {
			return nil, fmt.Errorf("resolving file collection provider %d: %w", i, err)
		}
		files = append(files, part...)
	}

	fc.resolved = files
	fc.done = true
	return fc.resolved, nil
}

// Len returns the number of pending providers before resolution, or the
// number of resolved files after it.
func (fc *FileCollection) Len() int {
	if fc.done {
		return len(fc.resolved)
	}
	return len(fc.providers)
}
