package render

import "testing"

func TestStringSingleVar(t *testing.T) {
	out, err := String("Initialize {{name}}", map[string]string{"name": "pell-accepts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Initialize pell-accepts" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestStringMultipleVars(t *testing.T) {
	out, err := String("{{name}} as package {{package}}", map[string]string{
		"name":    "pell-accepts",
		"package": "pell_accepts",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "pell-accepts as package pell_accepts" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestStringNoPlaceholders(t *testing.T) {
	out, err := String("Initialize repository from template", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Initialize repository from template" {
		t.Fatalf("got %q", out)
	}
}

func TestStringMissingVar(t *testing.T) {
	if _, err := String("Hello {{name}}", map[string]string{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStringUnclosedExpression(t *testing.T) {
	if _, err := String("Hello {{name", map[string]string{"name": "x"}); err == nil {
		t.Fatalf("expected error")
	}
}
