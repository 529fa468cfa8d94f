// Package handle provides shared dispatch-handle allocation for modules that
// issue asynchronously-settled operations. A handle is a numeric correlation
// token: each pipeline stage owns a disjoint numeric range, and handles inside
// a range are assigned from a monotonically increasing store-backed counter,
// so the numeric value alone identifies both the stage and the originating
// dispatch.
package handle

import (
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// counterPrefix is the store prefix for per-range allocation counters
	counterPrefix = "handle"

	// RangeWidth is the number of handles available in a single stage range.
	// Ranges are spaced RangeWidth apart, so base/RangeWidth identifies the
	// stage and handle%RangeWidth the dispatch index within it.
	RangeWidth = uint64(1) << 40
)

// ErrorProvider allows modules to surface allocator failures with their own
// error types, mirroring the shared nonce manager pattern.
type ErrorProvider interface {
	// ExhaustedError returns an error for an exhausted handle range
	ExhaustedError(msg string) error
}

// Allocator assigns dispatch handles from disjoint per-stage ranges.
// Counters persist in the owning module's store, so assignment is monotonic
// across invocations and never reuses a handle within a range.
type Allocator struct {
	storeKey      storetypes.StoreKey
	errorProvider ErrorProvider
	moduleName    string
}

// NewAllocator creates a handle allocator backed by the module's store.
func NewAllocator(storeKey storetypes.StoreKey, errorProvider ErrorProvider, moduleName string) *Allocator {
	return &Allocator{
		storeKey:      storeKey,
		errorProvider: errorProvider,
		moduleName:    moduleName,
	}
}

func encodeCounter(n uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	return bz
}

func decodeCounter(bz []byte) uint64 {
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (a *Allocator) counterKey(base uint64) []byte {
	return []byte(fmt.Sprintf("%s/%s/%d", counterPrefix, a.moduleName, base))
}

// Peek returns the next index that would be assigned in the range starting at
// base, without consuming it.
func (a *Allocator) Peek(ctx sdk.Context, base uint64) uint64 {
	store := ctx.KVStore(a.storeKey)
	return decodeCounter(store.Get(a.counterKey(base)))
}

// Next assigns the next handle in the range starting at base. The returned
// handle is base plus the current counter value; the counter is advanced
// afterwards. Returns an error once the range is exhausted.
func (a *Allocator) Next(ctx sdk.Context, base uint64) (uint64, error) {
	store := ctx.KVStore(a.storeKey)
	key := a.counterKey(base)

	idx := decodeCounter(store.Get(key))
	if idx >= RangeWidth {
		return 0, a.errorProvider.ExhaustedError(
			fmt.Sprintf("handle range starting at %d exhausted", base))
	}

	store.Set(key, encodeCounter(idx+1))
	return base + idx, nil
}

// Index returns the offset of handle within the range starting at base.
// Callers must have established range membership first.
func Index(handle, base uint64) uint64 {
	return handle - base
}

// InRange reports whether handle falls inside the range starting at base.
func InRange(handle, base uint64) bool {
	return handle >= base && handle < base+RangeWidth
}
