package leagues

import (
	"reflect"
	"testing"
)

func TestRomanianIDsOrder(t *testing.T) {
	want := []string{"272", "271", "270"}
	if got := RomanianIDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLookup(t *testing.T) {
	ref, ok := Lookup(LigaIII)
	if !ok || ref.Name != "Liga III" {
		t.Fatalf("expected Liga III, got %+v %v", ref, ok)
	}
	if _, ok := Lookup("39"); ok {
		t.Fatal("expected unknown league to miss")
	}
}
