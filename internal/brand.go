package internal

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// BrandID is the runtime identity of one scope invocation. Two IDs from
// distinct invocations never compare equal, which is what stands in for
// type-level brand incompatibility in this port.
type BrandID [16]byte

func NewBrandID() BrandID {
	return BrandID(uuid.New())
}

func (b BrandID) Bytes() []byte {
	return b[:]
}

func (b BrandID) String() string {
	// base64url, no padding, compact
	return base64.RawURLEncoding.EncodeToString(b[:])
}

func (b BrandID) IsZero() bool {
	return b == BrandID{}
}
