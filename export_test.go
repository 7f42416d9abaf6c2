package posixpath

// This file is part of the package tests (package posixpath) and exposes the
// lexical helpers to the external posixpath_test package.

const NoPos = noPos

var (
	IsDriveRoot        = isDriveRoot
	IsNetworkRoot      = isNetworkRoot
	HasRootNameString  = hasRootName
	IsRootSeparator    = isRootSeparator
	FindNextSep        = findNextSep
	FindPrevSep        = findPrevSep
	FindNetworkRootSep = findNetworkRootSep
	FindFilenamePos    = findFilenamePos
	FindExtensionPos   = findExtensionPos
	CollectSegments    = collectSegments
)

// HintsOf reports the cached hints of p.
func HintsOf(p Path) (normalized, absolute bool) {
	return p.normalized != notNormal, p.absolute == known
}
