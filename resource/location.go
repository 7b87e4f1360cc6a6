package resource

import (
	"fmt"
	"path"
	"strings"
)

// Namespace used by every asset shipped with the game.
const Namespace = "memory_game"

// Location identifies a texture or sound as namespace:path. The string form is
// the lookup key into both the texture and the sound catalogs.
type Location struct {
	Namespace string
	Path      string
}

func New(namespace, path string) Location {
	return Location{Namespace: namespace, Path: path}
}

// Game returns a location inside the game's own namespace.
func Game(path string) Location {
	return Location{Namespace: Namespace, Path: path}
}

// Empty is the location of the transparent placeholder image.
func Empty() Location {
	return Game("empty.png")
}

func (l Location) String() string {
	return l.Namespace + ":" + l.Path
}

// File is the slash-separated path of the asset below the asset root.
func (l Location) File() string {
	return path.Join(l.Namespace, l.Path)
}

func (l Location) IsZero() bool {
	return l.Namespace == "" && l.Path == ""
}

// Parse reads the namespace:path form. A missing namespace defaults to the
// game namespace.
func Parse(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, fmt.Errorf("empty resource location")
	}
	ns, path, found := strings.Cut(s, ":")
	if !found {
		return Game(ns), nil
	}
	if ns == "" || path == "" {
		return Location{}, fmt.Errorf("invalid resource location %q", s)
	}
	return Location{Namespace: ns, Path: path}, nil
}
