package validkit

import "github.com/google/uuid"

// ID adapts a UUID for the NotEmpty and NonZero constraints: the nil UUID
// counts as both empty and zero.
type ID uuid.UUID

func (id ID) IsEmptyValue() bool { return uuid.UUID(id) == uuid.Nil }

func (id ID) IsZeroValue() bool { return uuid.UUID(id) == uuid.Nil }

func (id ID) String() string { return uuid.UUID(id).String() }
