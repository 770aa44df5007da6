package render

import "image"

// Engine lays out a weighted word list onto a canvas of the configured size.
// It is the injected external collaborator: given counts and configuration,
// produce an image.
type Engine interface {
	Draw(counts map[string]int, cfg Config) (image.Image, error)
}
