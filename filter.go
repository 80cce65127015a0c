// Package binaryfuse implements a static, space-efficient approximate
// membership data structure for 64-bit keys: a 3-wise binary fuse
// filter. Built filters answer Contains with zero false negatives and a
// false-positive rate governed by the fingerprint width F (≈0.39% for
// uint8). Construction is single-threaded and O(n) expected time; once
// AddAll returns, a *Filter[F] is immutable and safe to share by
// read-only reference across goroutines without synchronization.
package binaryfuse

// FingerprintWidth constrains the stored fingerprint type. This realizes
// spec.md §9's "template specialisation over fingerprint type becomes a
// generic parameter": Filter8, Filter16 and Filter32 are the three
// instantiations the original C++ template supported.
type FingerprintWidth interface {
	~uint8 | ~uint16 | ~uint32
}

// Filter8, Filter16 and Filter32 are convenience aliases for the three
// instantiations the original C++ template supported, mirroring the
// teacher's BinaryFuse8 naming for the 8-bit case.
type (
	Filter8  = Filter[uint8]
	Filter16 = Filter[uint16]
	Filter32 = Filter[uint32]
)

// Strategy selects the hypergraph-tallying preprocessing pass used by
// AddAll (spec §4.3). Both strategies converge on the same final
// fingerprint table for a fixed seed and key set (property P5).
type Strategy int

const (
	// StrategySorted counting-sorts hashes by a prefix of blockBits bits
	// before tallying, improving locality for large filters. This is the
	// default.
	StrategySorted Strategy = iota
	// StrategyPrefetch walks keys in input order, issuing a speculative
	// read 16 keys ahead of the one being tallied.
	StrategyPrefetch
)

// Options configures a Filter beyond the bare key count. Zero-valued
// fields take their defaults (StrategySorted, a fresh default Hasher,
// MaxRetries=100), so Options{} is the configuration New uses.
type Options struct {
	// Strategy selects the tallying preprocessing pass. Default:
	// StrategySorted.
	Strategy Strategy
	// Hasher supplies the key-hash family. Default: a fresh mixHasher.
	// Filter calls Reseed on this value between retries; it is never
	// replaced wholesale.
	Hasher Hasher
	// MaxRetries bounds how many peeling attempts AddAll makes, the
	// first one included, before giving up with StatusNotEnoughSpace;
	// the hasher is reseeded between attempts. Default: 100.
	MaxRetries int
}

func (o Options) withDefaults() Options {
	if o.Hasher == nil {
		o.Hasher = newMixHasher()
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 100
	}
	return o
}

// Filter is a built (or build-in-progress) 3-wise binary fuse filter
// over fingerprints of width F. The zero value is not usable; construct
// with New or NewWithOptions.
type Filter[F FingerprintWidth] struct {
	geometry geometry

	opts Options

	// fingerprints has length geometry.arrayLength once allocated by New.
	fingerprints []F
}

// New allocates geometry for n keys with default Options. The
// fingerprint table is zero-initialized; call AddAll to populate it.
func New[F FingerprintWidth](n uint64) *Filter[F] {
	return NewWithOptions[F](n, Options{})
}

// NewWithOptions is New with explicit Options.
func NewWithOptions[F FingerprintWidth](n uint64, opts Options) *Filter[F] {
	g := newGeometry(n)
	return &Filter[F]{
		geometry:     g,
		opts:         opts.withDefaults(),
		fingerprints: make([]F, g.arrayLength),
	}
}

// Populate is sugar over New + AddAll for the common case of building a
// filter from an entire key slice in one call, mirroring the teacher's
// top-level PopulateBinaryFuse8 free function.
func Populate[F FingerprintWidth](keys []uint64, opts Options) (*Filter[F], error) {
	f := NewWithOptions[F](uint64(len(keys)), opts)
	status, err := f.AddAll(keys, 0, len(keys))
	if status != StatusOK {
		return nil, err
	}
	return f, nil
}

// Size returns the number of keys the filter was built for.
func (f *Filter[F]) Size() uint64 { return f.geometry.size }

// SizeInBytes returns the size of the fingerprint table in bytes.
func (f *Filter[F]) SizeInBytes() uint64 {
	var zero F
	return uint64(len(f.fingerprints)) * elementSize(zero)
}

func elementSize[F FingerprintWidth](zero F) uint64 {
	switch uint64(^zero) {
	case 0xFF:
		return 1
	case 0xFFFF:
		return 2
	default:
		return 4
	}
}
