package load

import (
	"fmt"

	"github.com/conftree/conftree/stream"
)

// The required configuration format version. A declared version is more
// likely to mean a file actually intended for this consumer.
const (
	RequiredVersionMajor = 1
	RequiredVersionMinor = 1
)

// checkVersion guards a document-start event. It runs before any node
// mutation for the document's content.
func checkVersion(ver *stream.Version) error {
	if ver == nil {
		return fmt.Errorf("%w: the configuration file must begin with the "+
			"following two lines: %%YAML %d.%d and ---",
			ErrVersion, RequiredVersionMajor, RequiredVersionMinor)
	}
	if ver.Major != RequiredVersionMajor || ver.Minor != RequiredVersionMinor {
		return fmt.Errorf("%w: must be %d.%d, got %s",
			ErrVersion, RequiredVersionMajor, RequiredVersionMinor, ver)
	}
	return nil
}
