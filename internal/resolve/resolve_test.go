package resolve

import "testing"

func TestResolveCoreSchema12(t *testing.T) {
	cases := []struct {
		in      string
		wantTag string
	}{
		{"true", BoolTag},
		{"false", BoolTag},
		{"yes", StrTag}, // YAML 1.2 core schema does not treat this as bool
		{"no", StrTag},
		{"on", StrTag},
		{"~", NullTag},
		{"null", NullTag},
		{"42", IntTag},
		{"3.14", FloatTag},
		{"plain text", StrTag},
	}
	for _, c := range cases {
		tag, _, err := Resolve("", c.in)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", c.in, err)
		}
		if tag != c.wantTag {
			t.Errorf("Resolve(%q) = %s, want %s", c.in, tag, c.wantTag)
		}
	}
}

func TestResolveCoreSchema11(t *testing.T) {
	cases := []struct {
		in      string
		wantTag string
		want    interface{}
	}{
		{"yes", BoolTag, true},
		{"Yes", BoolTag, true},
		{"YES", BoolTag, true},
		{"y", BoolTag, true},
		{"no", BoolTag, false},
		{"n", BoolTag, false},
		{"on", BoolTag, true},
		{"off", BoolTag, false},
		{"true", BoolTag, true},
		{"false", BoolTag, false},
	}
	for _, c := range cases {
		tag, v, err := ResolveWithVersion("", c.in, Version11)
		if err != nil {
			t.Fatalf("ResolveWithVersion(%q, 1.1): %v", c.in, err)
		}
		if tag != c.wantTag || v != c.want {
			t.Errorf("ResolveWithVersion(%q, 1.1) = (%s, %v), want (%s, %v)", c.in, tag, v, c.wantTag, c.want)
		}
	}
}

func TestResolveVersionsAgreeOnNonBoolWords(t *testing.T) {
	for _, in := range []string{"42", "3.14", "~", "null", "plain text"} {
		tag12, _, err := ResolveWithVersion("", in, Version12)
		if err != nil {
			t.Fatal(err)
		}
		tag11, _, err := ResolveWithVersion("", in, Version11)
		if err != nil {
			t.Fatal(err)
		}
		if tag12 != tag11 {
			t.Errorf("%q: version 1.2 resolved %s but 1.1 resolved %s", in, tag12, tag11)
		}
	}
}
