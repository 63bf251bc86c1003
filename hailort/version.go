package hailort

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersionConstraint is the range of libhailort releases whose
// record layouts this package mirrors. A library outside it needs the
// layouts re-verified before use.
const SupportedVersionConstraint = ">= 4.17.0, < 5.0.0"

// ErrUnsupportedVersion is returned by CheckLibraryVersion.
var ErrUnsupportedVersion = errors.New("unsupported HailoRT library version")

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

func (v Version) Semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Revision), "", "")
}

func (v FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// LibraryVersion returns the version of the loaded library.
func LibraryVersion() (Version, error) {
	var v Version
	if err := GetLibraryVersion(&v).Err("hailo_get_library_version"); err != nil {
		return Version{}, err
	}
	return v, nil
}

// CheckLibraryVersion returns the loaded library's version and an error
// wrapping ErrUnsupportedVersion when it does not satisfy constraint. An
// empty constraint means SupportedVersionConstraint.
func CheckLibraryVersion(constraint string) (Version, error) {
	if constraint == "" {
		constraint = SupportedVersionConstraint
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := LibraryVersion()
	if err != nil {
		return Version{}, err
	}
	if ok, reasons := c.Validate(v.Semver()); !ok {
		return v, fmt.Errorf("%w %s: %w", ErrUnsupportedVersion, v, errors.Join(reasons...))
	}
	return v, nil
}
