package papercraft

import (
	"strconv"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// Signature is a bitset of component ids. Entities use it to record the components they
// carry and systems use it to record the components they require.
type Signature struct {
	bits mask.Mask
}

// NewSignature returns a Signature with the bit of every given component set.
func NewSignature(components ...Component) Signature {
	var s Signature
	for _, c := range components {
		s.Set(ComponentIDOf(c))
	}
	return s
}

func (s *Signature) Set(id uint32) {
	s.bits.Mark(id)
}

func (s *Signature) Clear(id uint32) {
	s.bits.Unmark(id)
}

func (s *Signature) Reset() {
	s.bits = mask.Mask{}
}

// Test reports whether the bit for id is set.
func (s Signature) Test(id uint32) bool {
	var bit mask.Mask
	bit.Mark(id)
	return s.bits.ContainsAll(bit)
}

func (s Signature) IsEmpty() bool {
	return s == Signature{}
}

// Matches reports whether s holds every bit of required, i.e. (s & required) == required.
func (s Signature) Matches(required Signature) bool {
	return s.bits.ContainsAll(required.bits)
}

func (s Signature) ContainsAny(other Signature) bool {
	return s.bits.ContainsAny(other.bits)
}

func (s Signature) ContainsNone(other Signature) bool {
	return s.bits.ContainsNone(other.bits)
}

// Mask exposes the underlying bitmask.
func (s Signature) Mask() mask.Mask {
	return s.bits
}

// IDs lists the set bits in ascending order.
func (s Signature) IDs() []uint32 {
	var ids []uint32
	for id := uint32(0); id < MaxComponents; id++ {
		if s.Test(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s Signature) String() string {
	ids := s.IDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
