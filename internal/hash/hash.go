// Package hash digests text with the supported algorithms.
package hash

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"github.com/conneroisu/devutils/internal/action"
)

type Action int

const (
	MD5 Action = iota
	SHA256
	SHA512
)

var Actions = action.NewRegistry("hash", map[string]Action{
	"md5":    MD5,
	"sha256": SHA256,
	"sha512": SHA512,
})

// Apply returns the lowercase hex digest of the UTF-8 bytes of content.
func Apply(_ context.Context, act Action, content string) (string, error) {
	switch act {
	case MD5:
		sum := md5.Sum([]byte(content))
		return hex.EncodeToString(sum[:]), nil
	case SHA256:
		sum := sha256.Sum256([]byte(content))
		return hex.EncodeToString(sum[:]), nil
	case SHA512:
		sum := sha512.Sum512([]byte(content))
		return hex.EncodeToString(sum[:]), nil
	}
	return "", action.Unhandled(Actions, act)
}
