// Package assets embeds the default dictionary used when the player answers
// "default" at the dictionary prompt.
package assets

import (
	"embed"
	"io/fs"
)

// DefaultDictionary is the name of the embedded word list inside FS.
const DefaultDictionary = "words.txt"

//go:embed words.txt
var FS embed.FS

// OpenDefault opens the embedded default dictionary for reading.
func OpenDefault() (fs.File, error) {
	return FS.Open(DefaultDictionary)
}
