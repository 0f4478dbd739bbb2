// Package generate produces random tokens and unique identifiers. None of its
// actions read content.
package generate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Token Action = iota
	UUID
	ULID
)

var Actions = action.NewRegistry("generate", map[string]Action{
	"token": Token,
	"uuid":  UUID,
	"ulid":  ULID,
})

const (
	uppercaseSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseSet = "abcdefghijklmnopqrstuvwxyz"
	numberSet    = "0123456789"
	symbolSet    = "!@#$%^&*()-_=+[]{}.?/"
)

var namespaces = map[string]uuid.UUID{
	"dns":  uuid.NameSpaceDNS,
	"url":  uuid.NameSpaceURL,
	"oid":  uuid.NameSpaceOID,
	"x500": uuid.NameSpaceX500,
}

type Options struct {
	Length      int
	NoUppercase bool
	NoLowercase bool
	NoNumbers   bool
	NoSymbols   bool

	UUIDVersion int
	Namespace   string
	Name        string

	// NodeID replaces the host's node in v1 UUIDs when set.
	NodeID string

	Count int

	// Random defaults to crypto/rand.Reader.
	Random io.Reader
	// Now stamps ULIDs. Defaults to time.Now.
	Now func() time.Time
}

func DefaultOptions() Options {
	return Options{Length: 32, UUIDVersion: 4, Namespace: "dns", Count: 1}
}

func Apply(_ context.Context, act Action, _ string, opts Options) (string, error) {
	if opts.Count < 1 {
		return "", errors.NewParseError(errors.ErrCodeNotANumber,
			fmt.Sprintf("count must be at least 1, got %d", opts.Count), nil)
	}
	if opts.Random == nil {
		opts.Random = rand.Reader
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var next func() (string, error)
	switch act {
	case Token:
		charset, err := tokenCharset(opts)
		if err != nil {
			return "", err
		}
		next = func() (string, error) { return NewToken(opts.Random, charset, opts.Length) }
	case UUID:
		gen, err := uuidGenerator(opts)
		if err != nil {
			return "", err
		}
		next = gen
	case ULID:
		entropy := ulid.Monotonic(opts.Random, 0)
		next = func() (string, error) {
			id, err := ulid.New(ulid.Timestamp(opts.Now()), entropy)
			if err != nil {
				return "", errors.NewInternalError("cannot generate ulid", err)
			}
			return id.String(), nil
		}
	default:
		return "", action.Unhandled(Actions, act)
	}

	out := make([]string, 0, opts.Count)
	for range opts.Count {
		s, err := next()
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n"), nil
}

func tokenCharset(opts Options) (string, error) {
	if opts.Length < 1 {
		return "", errors.NewParseError(errors.ErrCodeNotANumber,
			fmt.Sprintf("token length must be at least 1, got %d", opts.Length), nil)
	}

	var b strings.Builder
	if !opts.NoUppercase {
		b.WriteString(uppercaseSet)
	}
	if !opts.NoLowercase {
		b.WriteString(lowercaseSet)
	}
	if !opts.NoNumbers {
		b.WriteString(numberSet)
	}
	if !opts.NoSymbols {
		b.WriteString(symbolSet)
	}
	if b.Len() == 0 {
		return "", errors.NewUnsupportedError(errors.ErrCodeNothingToGenerate, "nothing to generate")
	}
	return b.String(), nil
}

// NewToken draws length characters uniformly from charset.
func NewToken(random io.Reader, charset string, length int) (string, error) {
	limit := big.NewInt(int64(len(charset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(random, limit)
		if err != nil {
			return "", errors.NewInternalError("cannot read random bytes", err)
		}
		buf[i] = charset[n.Int64()]
	}
	return string(buf), nil
}

func uuidGenerator(opts Options) (func() (string, error), error) {
	switch opts.UUIDVersion {
	case 1:
		if opts.NodeID != "" {
			node, err := ParseNodeID(opts.NodeID)
			if err != nil {
				return nil, err
			}
			uuid.SetNodeID(node)
		}
		return func() (string, error) {
			id, err := uuid.NewUUID()
			if err != nil {
				return "", errors.NewInternalError("cannot generate uuid", err)
			}
			return id.String(), nil
		}, nil
	case 4:
		return func() (string, error) {
			id, err := uuid.NewRandomFromReader(opts.Random)
			if err != nil {
				return "", errors.NewInternalError("cannot generate uuid", err)
			}
			return id.String(), nil
		}, nil
	case 3, 5:
		if opts.Name == "" {
			return nil, errors.NewNoContentError(fmt.Sprintf("uuid version %d needs --name", opts.UUIDVersion))
		}
		ns, err := ResolveNamespace(opts.Namespace)
		if err != nil {
			return nil, err
		}
		id := uuid.NewSHA1(ns, []byte(opts.Name))
		if opts.UUIDVersion == 3 {
			id = uuid.NewMD5(ns, []byte(opts.Name))
		}
		return func() (string, error) { return id.String(), nil }, nil
	}

	return nil, errors.NewInvalidNameError("generate", "uuid version",
		strconv.Itoa(opts.UUIDVersion), []string{"1", "3", "4", "5"})
}

// ResolveNamespace accepts dns, url, oid, x500 or a literal UUID.
func ResolveNamespace(raw string) (uuid.UUID, error) {
	if ns, ok := namespaces[strings.ToLower(raw)]; ok {
		return ns, nil
	}
	ns, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.NewParseError(errors.ErrCodeInvalidDocument,
			fmt.Sprintf("namespace %q is not dns, url, oid, x500 or a uuid", raw), err)
	}
	return ns, nil
}

// ParseNodeID accepts six bytes as plain hex (0123456789ab) or in MAC
// notation (01:23:45:67:89:ab, 01-23-45-67-89-ab).
func ParseNodeID(raw string) ([]byte, error) {
	node, err := hex.DecodeString(raw)
	if err != nil {
		var mac net.HardwareAddr
		if mac, err = net.ParseMAC(raw); err == nil {
			node = mac
		}
	}
	if err != nil || len(node) != 6 {
		return nil, errors.NewDecodeError(errors.ErrCodeInvalidHex,
			fmt.Sprintf("invalid node id %q, expected 6 bytes such as 01:23:45:67:89:ab", raw), err)
	}
	return node, nil
}
