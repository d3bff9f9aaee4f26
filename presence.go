package camara

// Presence is the bit flag recorded for optional and nullable record slots.
type Presence uint8

const (
	PresenceSeen    Presence = 1 << iota // Field appeared in the input or was set by the caller.
	PresenceWasNull                      // Field value was null.
)

// Optional holds a record slot that may be absent, explicitly null, or set.
// The zero value is absent. Optional values are copied, never shared.
type Optional[T any] struct {
	value    T
	presence Presence
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, presence: PresenceSeen} }

// Null returns an Optional that is present with a JSON null value.
func Null[T any]() Optional[T] { return Optional[T]{presence: PresenceSeen | PresenceWasNull} }

// Unset returns the absent Optional. It equals the zero value.
func Unset[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is set to a non-null value.
func (o Optional[T]) Get() (T, bool) {
	if o.presence&PresenceSeen == 0 || o.presence&PresenceWasNull != 0 {
		var zero T
		return zero, false
	}
	return o.value, true
}

// OrElse returns the value when set, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

// IsSet reports whether the slot is present (including explicit null).
func (o Optional[T]) IsSet() bool { return o.presence&PresenceSeen != 0 }

// IsNull reports whether the slot is present with a JSON null.
func (o Optional[T]) IsNull() bool { return o.presence&PresenceWasNull != 0 }

// Presence exposes the raw flags.
func (o Optional[T]) Presence() Presence { return o.presence }
