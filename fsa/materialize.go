package fsa

// Materialize forces a lazy representation (rmEpsilon, intersection,
// difference) into the immutable indexed form, returning concrete
// representations unchanged. The operation is explicit and idempotent:
// Materialize(Materialize(a)) == Materialize(a).
//
// A lazy view whose expansion tripped a resource bound returns that
// deferred error here instead of a partial automaton.
func Materialize(a Automaton) (Automaton, error) {
	switch a.Kind() {
	case KindMaterialized, KindCompact, KindIndexed:
		return a, nil
	default:
		return IndexedOf(a)
	}
}
