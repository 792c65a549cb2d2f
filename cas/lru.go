package cas

import (
	"container/list"
)

// DefaultCacheSize is used when NewLRUCache is given a non-positive size.
const DefaultCacheSize = 1000

// LRUCache fronts another CAS and keeps the most recently retrieved entries in
// memory. Path reconstruction walks parent links backwards, so consecutive
// lookups hit neighbouring states and the cache stays warm. It is not safe for
// concurrent use; each search owns its own.
type LRUCache struct {
	underlying CAS
	cache      map[Hash]*list.Element
	evictList  *list.List
	maxSize    int
	hits       int
	misses     int
}

type cacheEntry struct {
	hash  Hash
	value []byte
}

func NewLRUCache(underlying CAS, maxSize int) *LRUCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &LRUCache{
		underlying: underlying,
		cache:      make(map[Hash]*list.Element),
		evictList:  list.New(),
		maxSize:    maxSize,
	}
}

func (l *LRUCache) Put(item Hashable) (Hash, error) {
	return l.underlying.Put(item)
}

func (l *LRUCache) Has(hash Hash) bool {
	return l.underlying.Has(hash)
}

func (l *LRUCache) Len() int {
	return l.underlying.Len()
}

func (l *LRUCache) getValue(h Hash) (bool, []byte, error) {
	if elem, ok := l.cache[h]; ok {
		l.evictList.MoveToFront(elem)
		l.hits++
		return true, elem.Value.(*cacheEntry).value, nil
	}
	l.misses++

	underlying, ok := l.underlying.(directStore)
	if !ok {
		return false, nil, nil
	}
	has, data, err := underlying.getValue(h)
	if err != nil || !has {
		return false, nil, err
	}
	l.addToCache(h, data)
	return true, data, nil
}

func (l *LRUCache) addToCache(hash Hash, value []byte) {
	if elem, ok := l.cache[hash]; ok {
		l.evictList.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}
	l.cache[hash] = l.evictList.PushFront(&cacheEntry{hash: hash, value: value})
	if l.evictList.Len() > l.maxSize {
		l.evictOldest()
	}
}

func (l *LRUCache) evictOldest() {
	elem := l.evictList.Back()
	if elem == nil {
		return
	}
	l.evictList.Remove(elem)
	delete(l.cache, elem.Value.(*cacheEntry).hash)
}

type CacheStats struct {
	Size    int
	MaxSize int
	Hits    int
	Misses  int
}

func (l *LRUCache) Stats() CacheStats {
	return CacheStats{
		Size:    len(l.cache),
		MaxSize: l.maxSize,
		Hits:    l.hits,
		Misses:  l.misses,
	}
}
