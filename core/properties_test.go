package core

import "testing"

func TestHasAndHasAny(t *testing.T) {
	p := Acceptor | AcceptorKnown | NoEpsilonsKnown
	if !p.Has(Acceptor | AcceptorKnown) {
		t.Fatal("expected Has to report both bits set")
	}
	if p.Has(IDeterministic) {
		t.Fatal("expected Has to report IDeterministic unset")
	}
	if !p.HasAny(IDeterministic | Acceptor) {
		t.Fatal("expected HasAny to find Acceptor even without IDeterministic")
	}
}

func TestComplementPropertiesPreservesInvariantBits(t *testing.T) {
	src := Unweighted | UnweightedKnown | NoEpsilons | NoEpsilonsKnown |
		IDeterministic | IDeterministicKnown | Acceptor | AcceptorKnown |
		ILabelSorted | ILabelSortedKnown
	got := ComplementProperties(src)

	want := Unweighted | UnweightedKnown | NoEpsilons | NoEpsilonsKnown |
		IDeterministic | IDeterministicKnown | Acceptor | AcceptorKnown
	if got&want != want {
		t.Fatalf("expected invariant bits preserved, got %b want %b", got, want)
	}
	if got.Has(ILabelSorted) {
		t.Fatal("expected ILabelSorted cleared")
	}
	if !got.Has(ILabelSortedKnown) {
		t.Fatal("expected ILabelSorted reported known (known to be unsorted)")
	}
}

func TestComplementPropertiesDropsUnknownBits(t *testing.T) {
	got := ComplementProperties(0)
	if got&^ILabelSortedKnown != 0 {
		t.Fatalf("expected no spurious bits from an all-unknown input, got %b", got)
	}
}
