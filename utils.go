package gallery

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// allowedExtensions is the closed set of accepted upload extensions. The
// extension is the only upload validation gate; file content is sniffed for
// metadata but never rejected.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// AllowedFile reports whether a declared filename carries one of the accepted
// image extensions, matched case-insensitively.
func AllowedFile(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// SecureFilename reduces a client-declared filename to a name that is safe
// to write under the storage directory. Path components are stripped for both
// separator styles and anything outside [A-Za-z0-9_.-] is dropped, with
// accented characters decomposed first so they keep their ASCII base. A name
// whose stem sanitizes away entirely gets a generated stem so the blob still
// lands under a resolvable locator.
func SecureFilename(filename string) string {
	name := strings.ReplaceAll(filename, `\`, "/")
	name = path.Base(name)
	name = norm.NFKD.String(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")

	ext := filepath.Ext(name)
	if strings.TrimSuffix(name, ext) == "" {
		return uuid.NewString() + ext
	}

	return strings.Trim(name, "._")
}
