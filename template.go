package searchfs

import (
	"strings"

	fserrors "github.com/jmgilman/searchfs/errors"
)

// nextTemplate returns the next template from a ";"-joined list and the
// remainder of the list. Leading separators are skipped. ok is false when
// no templates remain.
func nextTemplate(list string) (template, rest string, ok bool) {
	for strings.HasPrefix(list, TemplateSeparator) {
		list = list[len(TemplateSeparator):]
	}
	if list == "" {
		return "", "", false
	}

	if i := strings.Index(list, TemplateSeparator); i >= 0 {
		return list[:i], list[i:], true
	}
	return list, "", true
}

// substitute replaces every occurrence of the "?" marker in the template
// with the logical name. The accumulated path is bounds-checked against
// max; exceeding it fails with TOO_LONG rather than truncating.
//
// A template without a marker resolves to itself. Text after the last
// marker is preserved.
func substitute(template, name string, max int) (string, error) {
	var b strings.Builder
	rest := template
	for {
		i := strings.Index(rest, TemplateMark)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(name)
		if b.Len() > max {
			return "", fserrors.Newf(fserrors.CodeTooLong, "resolved path exceeds %d bytes", max)
		}
		rest = rest[i+len(TemplateMark):]
	}

	if b.Len() > max {
		return "", fserrors.Newf(fserrors.CodeTooLong, "resolved path exceeds %d bytes", max)
	}
	return b.String(), nil
}
