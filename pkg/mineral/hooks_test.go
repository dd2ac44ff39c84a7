package mineral

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupHook_Builtins(t *testing.T) {
	for _, name := range []string{"trim", "trim-empty-lines", "html-minify", "css-minify", "js-minify"} {
		if _, ok := LookupHook(name); !ok {
			t.Errorf("expected builtin hook %q", name)
		}
	}

	if _, ok := LookupHook("nonexistent"); ok {
		t.Error("expected lookup of unknown hook to fail")
	}
}

func TestRegisterHook(t *testing.T) {
	RegisterHook("test-upper", func(s string) (string, error) { return strings.ToUpper(s), nil })
	RegisterHook("test-nil", nil)

	h, ok := LookupHook("test-upper")
	if !ok {
		t.Fatal("expected registered hook")
	}
	if got, _ := h("abc"); got != "ABC" {
		t.Errorf("hook() = %q, want %q", got, "ABC")
	}

	if _, ok := LookupHook("test-nil"); ok {
		t.Error("nil hook should not be registered")
	}

	names := HookNames()
	found := false
	for i, name := range names {
		if name == "test-upper" {
			found = true
		}
		if i > 0 && names[i-1] > name {
			t.Errorf("HookNames() not sorted: %v", names)
		}
	}
	if !found {
		t.Errorf("HookNames() = %v, missing test-upper", names)
	}
}

func TestChainHooks(t *testing.T) {
	appendHook := func(suffix string) Hook {
		return func(s string) (string, error) { return s + suffix, nil }
	}

	t.Run("empty", func(t *testing.T) {
		if ChainHooks() != nil {
			t.Error("expected nil for empty chain")
		}
		if ChainHooks(nil, nil) != nil {
			t.Error("expected nil when all hooks are nil")
		}
	})

	t.Run("order", func(t *testing.T) {
		h := ChainHooks(appendHook("a"), nil, appendHook("b"), appendHook("c"))
		got, err := h("")
		if err != nil {
			t.Fatalf("chain error = %v", err)
		}
		if got != "abc" {
			t.Errorf("chain() = %q, want %q", got, "abc")
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		hookErr := errors.New("stop")
		called := false
		h := ChainHooks(
			func(string) (string, error) { return "", hookErr },
			func(s string) (string, error) {
				called = true
				return s, nil
			},
		)
		if _, err := h("x"); err != hookErr {
			t.Errorf("chain error = %v, want %v", err, hookErr)
		}
		if called {
			t.Error("hook after failure should not run")
		}
	})
}

func TestNewReplaceHook(t *testing.T) {
	h, err := NewReplaceHook(`<br\s*/?>`, "<br>")
	if err != nil {
		t.Fatalf("NewReplaceHook() error = %v", err)
	}
	got, _ := h("a<br/>b<br />c")
	if got != "a<br>b<br>c" {
		t.Errorf("hook() = %q, want %q", got, "a<br>b<br>c")
	}

	groups, err := NewReplaceHook(`<(/?)b>`, "<${1}strong>")
	if err != nil {
		t.Fatalf("NewReplaceHook() error = %v", err)
	}
	if got, _ := groups("<b>x</b>"); got != "<strong>x</strong>" {
		t.Errorf("hook() = %q", got)
	}

	if _, err := NewReplaceHook("(", ""); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestTrimHooks(t *testing.T) {
	if got, _ := TrimSpace("  <p>x</p>\n"); got != "<p>x</p>" {
		t.Errorf("TrimSpace() = %q", got)
	}
	if got, _ := TrimEmptyLines("a\n\n  \nb\n  "); got != "a\nb" {
		t.Errorf("TrimEmptyLines() = %q, want %q", got, "a\nb")
	}
}

func TestMinifyStyleBlocks(t *testing.T) {
	got, err := MinifyStyleBlocks("<p>x</p><style> a { color : red ; } </style><style></style>")
	if err != nil {
		t.Fatalf("MinifyStyleBlocks() error = %v", err)
	}
	if !strings.Contains(got, "<style>a{color:red}</style>") {
		t.Errorf("MinifyStyleBlocks() = %q", got)
	}
	if !strings.HasPrefix(got, "<p>x</p>") || !strings.HasSuffix(got, "<style></style>") {
		t.Errorf("MinifyStyleBlocks() altered surrounding markup: %q", got)
	}
}

func TestMinifyScriptBlocks(t *testing.T) {
	got, err := MinifyScriptBlocks(`<script src="/a.js"></script><script>  var   a  =  1 ;  </script>`)
	if err != nil {
		t.Fatalf("MinifyScriptBlocks() error = %v", err)
	}
	if !strings.HasPrefix(got, `<script src="/a.js"></script><script>`) {
		t.Errorf("MinifyScriptBlocks() = %q", got)
	}
	if !strings.Contains(got, "var a=1") {
		t.Errorf("MinifyScriptBlocks() did not minify body: %q", got)
	}
}

func TestMinifyHTML_AsAfterHook(t *testing.T) {
	input := "<html>\n<body>\n  <p class=\"x\">hello</p>\n</body>\n</html>"

	got, err := Process(input, Options{AfterPruning: MinifyHTML})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	plain, _ := Process(input, Options{})
	if len(got) > len(plain) {
		t.Errorf("html-minify grew output: %q vs %q", got, plain)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("html-minify lost text: %q", got)
	}
}
