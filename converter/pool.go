package converter

import "sync"

// Worklist capacity (typical documents stay well under this)
const (
	referenceListCap    = 64
	referenceListMaxCap = 4096
)

var referenceListPool = sync.Pool{
	New: func() any {
		return make([]string, 0, referenceListCap)
	},
}

func getReferenceList() []string {
	return referenceListPool.Get().([]string)[:0]
}

func putReferenceList(s []string) {
	if cap(s) == 0 || cap(s) > referenceListMaxCap {
		return
	}
	referenceListPool.Put(s[:0]) //nolint:staticcheck // slice header reuse is intentional
}
