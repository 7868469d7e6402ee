package kstr

import "testing"

func TestTokenizer(t *testing.T) {
	specs := []struct {
		input  string
		delims string
		exp    []string
	}{
		// empty fields between consecutive delimiters are skipped
		{"a,b,,c", ",", []string{"a", "b", "c"}},
		{",,a,b", ",", []string{"a", "b"}},
		{"a b\tc", " \t", []string{"a", "b", "c"}},
		{"abc", ",", []string{"abc"}},
		{"", ",", nil},
		{",,,", ",", nil},
	}

	for specIndex, spec := range specs {
		var tok Tokenizer
		tok.Reset(cstr(spec.input))
		delims := cstr(spec.delims)

		var got []string
		for {
			token := tok.Next(delims)
			if token == nil {
				break
			}
			got = append(got, string(token))
		}

		if len(got) != len(spec.exp) {
			t.Errorf("[spec %d] expected %d tokens; got %d (%v)", specIndex, len(spec.exp), len(got), got)
			continue
		}

		for i, exp := range spec.exp {
			if got[i] != exp {
				t.Errorf("[spec %d] expected token %d to be %q; got %q", specIndex, i, exp, got[i])
			}
		}

		// further calls keep reporting exhaustion
		if token := tok.Next(delims); token != nil {
			t.Errorf("[spec %d] expected exhausted tokenizer to return nil; got %q", specIndex, string(token))
		}
	}
}

func TestTokenizerMutatesBuffer(t *testing.T) {
	buf := cstr("a,b")
	var tok Tokenizer
	tok.Reset(buf)

	token := tok.Next(cstr(","))
	if string(token) != "a" {
		t.Fatalf("expected first token to be %q; got %q", "a", string(token))
	}

	// the delimiter after the token is overwritten with a terminator
	if buf[1] != 0 {
		t.Fatalf("expected delimiter at offset 1 to be overwritten with a terminator; got %q", buf[1])
	}
}

func TestTokenizerReset(t *testing.T) {
	var tok Tokenizer
	delims := cstr(",")

	if token := tok.Next(delims); token != nil {
		t.Fatalf("expected zero tokenizer to return nil; got %q", string(token))
	}

	tok.Reset(cstr("x,y"))
	if token := tok.Next(delims); string(token) != "x" {
		t.Fatalf("expected first token to be %q; got %q", "x", string(token))
	}

	tok.Reset(cstr("z"))
	if token := tok.Next(delims); string(token) != "z" {
		t.Fatalf("expected restarted tokenizer to return %q; got %q", "z", string(token))
	}
}
