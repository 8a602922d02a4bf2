package efficiency

import "fmt"

// Key counts the structures claimed by one decomposition branch.
type Key struct {
	Melds         int `json:"melds"`
	Partials      int `json:"partials"`
	EyeCandidates int `json:"eyeCandidates"`
	Eyes          int `json:"eyes"`
}

func (k Key) Zero() bool {
	return k == Key{}
}

func (k Key) Join(o Key) Key {
	return Key{
		Melds:         k.Melds + o.Melds,
		Partials:      k.Partials + o.Partials,
		EyeCandidates: k.EyeCandidates + o.EyeCandidates,
		Eyes:          k.Eyes + o.Eyes,
	}
}

// Better ranks melds first, then eyes, partials and eye candidates, more is better.
func (k Key) Better(o Key) bool {
	if k.Melds != o.Melds {
		return k.Melds > o.Melds
	}
	if k.Eyes != o.Eyes {
		return k.Eyes > o.Eyes
	}
	if k.Partials != o.Partials {
		return k.Partials > o.Partials
	}
	return k.EyeCandidates > o.EyeCandidates
}

func (k *Key) add(kind Kind, delta int) {
	switch kind {
	case KindMeld:
		k.Melds += delta
	case KindEye:
		k.Eyes += delta
	case KindEyeCandidate:
		k.EyeCandidates += delta
	case KindPartial:
		k.Partials += delta
	default:
		panic(fmt.Sprintf("efficiency: unknown move kind %d", kind))
	}
}

func (k Key) String() string {
	return fmt.Sprintf("melds=%d eyes=%d partials=%d candidates=%d", k.Melds, k.Eyes, k.Partials, k.EyeCandidates)
}
