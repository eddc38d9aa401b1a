// Package id generates time-sortable row identifiers.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// monotonic entropy keeps ids of the same millisecond increasing.
	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a new ULID string.
func New() string {
	return At(time.Now())
}

// At returns a new ULID string whose time part is t.
func At(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t.UTC()), mono)
	if err != nil {
		panic(err)
	}
	return id.String()
}

// Time returns the generation time of a ULID string.
func Time(s string) (time.Time, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(id.Time()), nil
}
