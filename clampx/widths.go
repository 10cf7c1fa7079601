package clampx

// Per-width shorthands over ClampFrom and ClampTo, for interoperating with
// foreign coordinate encodings such as 16-bit terminal APIs or 32-bit native
// window systems. All of them are total and never panic.

/* int8 */

// FromI8 clamps an int8 into [Min, Max].
func (Clamper[T]) FromI8(d int8) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromI8(d int8) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromI8(d int8) T { return ClampPositiveFrom[T](d) }

// ToI8 clamps d into [Min, Max] and saturates it into an int8.
func (Clamper[T]) ToI8(d T) int8 { return ClampTo[int8](d) }

func (Clamper[T]) NonNegativeToI8(d T) int8 { return ClampNonNegativeTo[int8](d) }

func (Clamper[T]) PositiveToI8(d T) int8 { return ClampPositiveTo[int8](d) }

/* uint8 */

// FromU8 clamps a uint8 into [Min, Max].
func (Clamper[T]) FromU8(d uint8) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromU8(d uint8) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromU8(d uint8) T { return ClampPositiveFrom[T](d) }

// ToU8 clamps d into [Min, Max] and saturates it into a uint8.
func (Clamper[T]) ToU8(d T) uint8 { return ClampTo[uint8](d) }

func (Clamper[T]) NonNegativeToU8(d T) uint8 { return ClampNonNegativeTo[uint8](d) }

func (Clamper[T]) PositiveToU8(d T) uint8 { return ClampPositiveTo[uint8](d) }

/* int16 (SDL style signed coordinates) */

// FromI16 clamps an int16 into [Min, Max].
func (Clamper[T]) FromI16(d int16) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromI16(d int16) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromI16(d int16) T { return ClampPositiveFrom[T](d) }

// ToI16 clamps d into [Min, Max] and saturates it into an int16.
func (Clamper[T]) ToI16(d T) int16 { return ClampTo[int16](d) }

func (Clamper[T]) NonNegativeToI16(d T) int16 { return ClampNonNegativeTo[int16](d) }

func (Clamper[T]) PositiveToI16(d T) int16 { return ClampPositiveTo[int16](d) }

/* uint16 (terminal cell coordinates) */

// FromU16 clamps a uint16 into [Min, Max].
func (Clamper[T]) FromU16(d uint16) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromU16(d uint16) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromU16(d uint16) T { return ClampPositiveFrom[T](d) }

// ToU16 clamps d into [Min, Max] and saturates it into a uint16.
func (Clamper[T]) ToU16(d T) uint16 { return ClampTo[uint16](d) }

func (Clamper[T]) NonNegativeToU16(d T) uint16 { return ClampNonNegativeTo[uint16](d) }

func (Clamper[T]) PositiveToU16(d T) uint16 { return ClampPositiveTo[uint16](d) }

/* int32 */

// FromI32 clamps an int32 into [Min, Max].
func (Clamper[T]) FromI32(d int32) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromI32(d int32) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromI32(d int32) T { return ClampPositiveFrom[T](d) }

// ToI32 clamps d into [Min, Max] and saturates it into an int32.
func (Clamper[T]) ToI32(d T) int32 { return ClampTo[int32](d) }

func (Clamper[T]) NonNegativeToI32(d T) int32 { return ClampNonNegativeTo[int32](d) }

func (Clamper[T]) PositiveToI32(d T) int32 { return ClampPositiveTo[int32](d) }

/* uint32 (native window and canvas sizes) */

// FromU32 clamps a uint32 into [Min, Max].
func (Clamper[T]) FromU32(d uint32) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromU32(d uint32) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromU32(d uint32) T { return ClampPositiveFrom[T](d) }

// ToU32 clamps d into [Min, Max] and saturates it into a uint32.
func (Clamper[T]) ToU32(d T) uint32 { return ClampTo[uint32](d) }

func (Clamper[T]) NonNegativeToU32(d T) uint32 { return ClampNonNegativeTo[uint32](d) }

func (Clamper[T]) PositiveToU32(d T) uint32 { return ClampPositiveTo[uint32](d) }

/* int64 */

// FromI64 clamps an int64 into [Min, Max].
func (Clamper[T]) FromI64(d int64) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromI64(d int64) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromI64(d int64) T { return ClampPositiveFrom[T](d) }

// ToI64 clamps d into [Min, Max] and saturates it into an int64.
func (Clamper[T]) ToI64(d T) int64 { return ClampTo[int64](d) }

func (Clamper[T]) NonNegativeToI64(d T) int64 { return ClampNonNegativeTo[int64](d) }

func (Clamper[T]) PositiveToI64(d T) int64 { return ClampPositiveTo[int64](d) }

/* uint64 */

// FromU64 clamps a uint64 into [Min, Max].
func (Clamper[T]) FromU64(d uint64) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromU64(d uint64) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromU64(d uint64) T { return ClampPositiveFrom[T](d) }

// ToU64 clamps d into [Min, Max] and saturates it into a uint64.
func (Clamper[T]) ToU64(d T) uint64 { return ClampTo[uint64](d) }

func (Clamper[T]) NonNegativeToU64(d T) uint64 { return ClampNonNegativeTo[uint64](d) }

func (Clamper[T]) PositiveToU64(d T) uint64 { return ClampPositiveTo[uint64](d) }

/* int (slice lengths and indices) */

// FromInt clamps an int into [Min, Max].
func (Clamper[T]) FromInt(d int) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromInt(d int) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromInt(d int) T { return ClampPositiveFrom[T](d) }

// ToInt clamps d into [Min, Max] and saturates it into an int.
func (Clamper[T]) ToInt(d T) int { return ClampTo[int](d) }

func (Clamper[T]) NonNegativeToInt(d T) int { return ClampNonNegativeTo[int](d) }

func (Clamper[T]) PositiveToInt(d T) int { return ClampPositiveTo[int](d) }

/* uint */

// FromUint clamps a uint into [Min, Max].
func (Clamper[T]) FromUint(d uint) T { return ClampFrom[T](d) }

func (Clamper[T]) NonNegativeFromUint(d uint) T { return ClampNonNegativeFrom[T](d) }

func (Clamper[T]) PositiveFromUint(d uint) T { return ClampPositiveFrom[T](d) }

// ToUint clamps d into [Min, Max] and saturates it into a uint.
func (Clamper[T]) ToUint(d T) uint { return ClampTo[uint](d) }

func (Clamper[T]) NonNegativeToUint(d T) uint { return ClampNonNegativeTo[uint](d) }

func (Clamper[T]) PositiveToUint(d T) uint { return ClampPositiveTo[uint](d) }
