package twm

var (
	defaultCache = newLRU(defaultMaxCacheSize)

	// Merge is the default merger. It resolves conflicts between the
	// classes of a space-delimited class list (or any nesting of class
	// lists) against the default configuration, later classes winning.
	Merge = CreateTwMerge(nil, defaultCache)
)

// MergeWith merges against a caller-supplied configuration. The merger is
// built per call; callers merging repeatedly against the same
// configuration should hold on to a CreateTwMerge result instead.
func MergeWith(config *Config, args ...any) string {
	return CreateTwMerge(config, nil)(args...)
}

// Create builds a merger from a configuration factory and a chain of
// transformers, each receiving the previous configuration.
func Create(base func() *Config, transforms ...func(*Config) *Config) MergeFn {
	config := base()
	for _, transform := range transforms {
		config = transform(config)
	}
	return CreateTwMerge(config, nil)
}

// Extend builds a merger whose configuration starts from the default one
// and applies the recognized options.
func Extend(opts ExtendOptions) MergeFn {
	return CreateTwMerge(DefaultConfig().withExtendOptions(opts), nil)
}

// CacheGet reads a merged result for a raw class list from the default
// merger's cache.
func CacheGet(key string) (string, bool) {
	return defaultCache.Get(key)
}

// CacheSet stores a merged result in the default merger's cache.
func CacheSet(key, value string) {
	defaultCache.Set(key, value)
}

// CacheClear drops every entry from the default merger's cache.
func CacheClear() {
	defaultCache.Clear()
}

// CacheSize returns the number of entries in the default merger's cache.
func CacheSize() int {
	return defaultCache.Size()
}

// CacheResize changes the bound of the default merger's cache, evicting
// least-recently used entries on shrink.
func CacheResize(maxSize int) {
	defaultCache.Resize(maxSize)
}
