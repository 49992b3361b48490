package addon

import (
	"fmt"
	"strconv"
	"strings"
)

// PackageExt is the file extension of packaged add-ons.
const PackageExt = ".addon"

// FileNameInfo is the metadata encoded in a package file name.
type FileNameInfo struct {
	ID          string
	Status      Status
	FileVersion int
}

// IsPackageFileName reports whether name follows the package naming
// convention <id>-<status>-<fileversion> with the package extension.
func IsPackageFileName(name string) bool {
	_, err := ParseFileName(name)
	return err == nil
}

// ParseFileName extracts the add-on id, status and file version from a
// package file name.
func ParseFileName(name string) (FileNameInfo, error) {
	if !strings.HasSuffix(strings.ToLower(name), PackageExt) {
		return FileNameInfo{}, fmt.Errorf("not an add-on package: %s", name)
	}

	// The id itself may contain hyphens, so split from the end.
	base := name[:len(name)-len(PackageExt)]
	parts := strings.Split(base, "-")
	if len(parts) < 3 {
		return FileNameInfo{}, fmt.Errorf("invalid add-on package name: %s", name)
	}

	status, err := ParseStatus(parts[len(parts)-2])
	if err != nil {
		return FileNameInfo{}, fmt.Errorf("invalid add-on package name %s: %w", name, err)
	}
	fileVersion, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return FileNameInfo{}, fmt.Errorf("invalid add-on package name %s: %w", name, err)
	}

	id := strings.Join(parts[:len(parts)-2], "-")
	return FileNameInfo{ID: id, Status: status, FileVersion: fileVersion}, nil
}
