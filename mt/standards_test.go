package mt_test

import (
	"errors"
	"testing"

	mtschema "github.com/kujaku11/mtschema"
	"github.com/kujaku11/mtschema/mt"
)

func TestStandards_LookupEveryCatalogSchema(t *testing.T) {
	reg := mt.Standards()
	for _, name := range []string{
		"experiment", "survey", "station", "run",
		"channel", "electric", "magnetic", "auxiliary",
		"filter", "pole_zero", "coefficient", "time_delay", "fir", "fap",
	} {
		s, err := reg.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		if s.SchemaName() != name {
			t.Fatalf("lookup %q returned %q", name, s.SchemaName())
		}
	}
}

func TestStandards_UnknownSchema(t *testing.T) {
	_, err := mt.Standards().Lookup("transfer_function")
	var nf *mtschema.KeyNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected KeyNotFoundError, got %v", err)
	}
	if nf.Key != "transfer_function" {
		t.Fatalf("key = %q", nf.Key)
	}
}

func TestStandards_SameInstance(t *testing.T) {
	if mt.Standards() != mt.Standards() {
		t.Fatal("registry rebuilt between calls")
	}
}
