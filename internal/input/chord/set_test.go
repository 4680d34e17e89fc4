package chord

import (
	"slices"
	"testing"
)

func TestSetOfCanonicalOrder(t *testing.T) {
	a := SetOf("shift", "alt", "shift")
	b := SetOf("alt", "shift")

	if !a.Equal(b) {
		t.Errorf("SetOf(shift, alt, shift) = %v, want %v", a, b)
	}
	if got := a.Items(); !slices.Equal(got, []string{"alt", "shift"}) {
		t.Errorf("Items() = %v, want [alt shift]", got)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestSetOperations(t *testing.T) {
	tests := []struct {
		name string
		a, b Set[string]
		or   Set[string]
		and  Set[string]
		xor  Set[string]
	}{
		{
			name: "disjoint",
			a:    SetOf("alt"),
			b:    SetOf("shift"),
			or:   SetOf("alt", "shift"),
			and:  SetOf[string](),
			xor:  SetOf("alt", "shift"),
		},
		{
			name: "overlap",
			a:    SetOf("alt", "control"),
			b:    SetOf("control", "shift"),
			or:   SetOf("alt", "control", "shift"),
			and:  SetOf("control"),
			xor:  SetOf("alt", "shift"),
		},
		{
			name: "empty",
			a:    SetOf("meta"),
			b:    Set[string]{},
			or:   SetOf("meta"),
			and:  Set[string]{},
			xor:  SetOf("meta"),
		},
	}

	for _, tt := range tests {
		if got := tt.a.Or(tt.b); !got.Equal(tt.or) {
			t.Errorf("%s: Or() = %v, want %v", tt.name, got, tt.or)
		}
		if got := tt.a.And(tt.b); !got.Equal(tt.and) {
			t.Errorf("%s: And() = %v, want %v", tt.name, got, tt.and)
		}
		if got := tt.a.Xor(tt.b); !got.Equal(tt.xor) {
			t.Errorf("%s: Xor() = %v, want %v", tt.name, got, tt.xor)
		}
	}
}

func TestSetAlgebra(t *testing.T) {
	sets := []Set[string]{
		{},
		SetOf("shift"),
		SetOf("shift", "control"),
		SetOf("alt", "meta"),
		SetOf("alt", "control", "meta", "shift"),
	}
	empty := Set[string]{}

	for _, a := range sets {
		if !a.Or(a).Equal(a) {
			t.Errorf("%v or itself != itself", a)
		}
		if !a.And(a).Equal(a) {
			t.Errorf("%v and itself != itself", a)
		}
		if !a.Xor(a).IsEmpty() {
			t.Errorf("%v xor itself = %v, want empty", a, a.Xor(a))
		}
		if !a.Or(empty).Equal(a) {
			t.Errorf("%v or empty != itself", a)
		}
		for _, b := range sets {
			if !a.Or(b).Equal(b.Or(a)) {
				t.Errorf("or not commutative for %v, %v", a, b)
			}
			if !a.And(b).Equal(b.And(a)) {
				t.Errorf("and not commutative for %v, %v", a, b)
			}
			// (a or b) minus (a and b)
			both := a.And(b)
			var only []string
			for _, x := range a.Or(b).Items() {
				if !both.Has(x) {
					only = append(only, x)
				}
			}
			want := SetOf(only...)
			if got := a.Xor(b); !got.Equal(want) {
				t.Errorf("%v xor %v = %v, want %v", a, b, got, want)
			}
			for _, c := range sets {
				if !a.Or(b).Or(c).Equal(a.Or(b.Or(c))) {
					t.Errorf("or not associative for %v, %v, %v", a, b, c)
				}
				if !a.And(b).And(c).Equal(a.And(b.And(c))) {
					t.Errorf("and not associative for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestSetHasAndString(t *testing.T) {
	s := SetOf("shift", "alt")
	if !s.Has("alt") {
		t.Error("Has(alt) = false, want true")
	}
	if s.Has("meta") {
		t.Error("Has(meta) = true, want false")
	}
	if got := s.String(); got != "alt+shift" {
		t.Errorf("String() = %q, want %q", got, "alt+shift")
	}
	if got := (Set[string]{}).String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
}

func TestSetCompare(t *testing.T) {
	tests := []struct {
		a, b Set[int]
		want int
	}{
		{SetOf(1, 2), SetOf(2, 1), 0},
		{SetOf(1), SetOf(1, 2), -1},
		{SetOf(3), SetOf(1, 2), 1},
		{Set[int]{}, SetOf(1), -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
