package evidence

import "testing"

func TestVariantTypes(t *testing.T) {
	cases := []struct {
		v       Variant
		want    Type
		hasFile bool
	}{
		{ImageVariant{LinkToRelatedResource: "https://x"}, TypeImage, true},
		{DocumentVariant{}, TypeDocument, true},
		{LinkVariant{}, TypeLink, false},
	}
	for _, c := range cases {
		if got := c.v.Type(); got != c.want {
			t.Fatalf("%T.Type() = %q, want %q", c.v, got, c.want)
		}
		if got := HasFile(c.v); got != c.hasFile {
			t.Fatalf("HasFile(%T) = %v, want %v", c.v, got, c.hasFile)
		}
	}
}
