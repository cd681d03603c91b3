// Package fspath resolves paths against the shell's virtual
// filesystem: lexical normalization for cd -L and symlink-chasing
// resolution for cd -P and pwd -P.
package fspath

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// ErrTooManyLinks is returned when symlink resolution loops.
var ErrTooManyLinks = errors.New("too many levels of symbolic links")

const maxLinks = 16

// Normalize makes name absolute against cwd and lexically removes "."
// and ".." components without consulting the filesystem.
func Normalize(cwd, name string) string {
	if !path.IsAbs(name) {
		name = path.Join(cwd, name)
	}
	return path.Clean(name)
}

// Realpath resolves name against cwd on fsys, following symlinks in
// every component. Filesystems that don't support symlinks (such as
// the in-memory one used in tests) resolve purely lexically.
func Realpath(fsys afero.Fs, cwd, name string) (string, error) {
	rest := splitComponents(Normalize(cwd, name))

	resolved := "/"
	links := 0
	for len(rest) > 0 {
		comp := rest[0]
		rest = rest[1:]

		switch comp {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, comp)
		target, isLink, err := readlink(fsys, next)
		if err != nil {
			return "", err
		}
		if !isLink {
			resolved = next
			continue
		}

		links++
		if links > maxLinks {
			return "", ErrTooManyLinks
		}
		if path.IsAbs(target) {
			resolved = "/"
		}
		rest = append(splitComponents(target), rest...)
	}

	return resolved, nil
}

func splitComponents(name string) []string {
	return strings.Split(strings.TrimPrefix(name, "/"), "/")
}

// readlink reports whether name is a symlink on fsys and, if so, its
// target. Filesystems without symlink support report false.
func readlink(fsys afero.Fs, name string) (target string, isLink bool, err error) {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return "", false, nil
	}

	fi, lstatCalled, err := lstater.LstatIfPossible(name)
	if err != nil {
		return "", false, err
	}
	if !lstatCalled || fi.Mode()&os.ModeSymlink == 0 {
		return "", false, nil
	}

	reader, ok := fsys.(afero.LinkReader)
	if !ok {
		return "", false, nil
	}
	target, err = reader.ReadlinkIfPossible(name)
	if err != nil {
		return "", false, err
	}
	return target, true, nil
}
