package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lambda-lang/core/schema/load"
)

func TestDefaultSchemaFile(t *testing.T) {
	cases := map[string]string{
		"html":    "html5_schema.ls",
		"json":    "json_schema.ls",
		"xml":     "xml_schema.ls",
		"eml":     "eml_schema.ls",
		"unknown": "doc_schema.ls",
		"":        "doc_schema.ls",
	}
	for format, want := range cases {
		if got := defaultSchemaFile(format); got != want {
			t.Errorf("defaultSchemaFile(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestInferFormat(t *testing.T) {
	cases := map[string]string{
		"data.json":     "json",
		"DATA.JSON":     "json",
		"page.html":     "html",
		"page.htm":      "html",
		"readme.md":     "markdown",
		"config.yaml":   "yaml",
		"config.yml":    "yaml",
		"notes.txt":     "unknown",
		"no_extension":  "unknown",
		"contact.vcf":   "vcf",
		"message.eml":   "eml",
		"archive.latex": "latex",
	}
	for path, want := range cases {
		if got := inferFormat(path); got != want {
			t.Errorf("inferFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestEmbeddedSchemasCoverEveryFormat(t *testing.T) {
	for _, f := range append(formatTable, "unknown") {
		name := defaultSchemaFile(f)
		if _, err := defaultSchemas.ReadFile("schemas/" + name); err != nil {
			t.Errorf("format %q: embedded schema %q missing: %v", f, name, err)
		}
	}
}

func TestRootTypeName_PrefersExplicitRoot(t *testing.T) {
	s, res, err := load.LoadString(`type Root = int
type Other = string`, "test://unit/root.ls")
	if err != nil || res.HasErrors() {
		t.Fatalf("load failed: err=%v res=%v", err, res.IssuesSlice())
	}
	name, err := rootTypeName(s)
	if err != nil || name != "Root" {
		t.Fatalf("rootTypeName() = (%q, %v), want (Root, nil)", name, err)
	}
}

func TestRootTypeName_FallsBackToFirstDeclaration(t *testing.T) {
	s, res, err := load.LoadString(`type Point = { x: int, y: int }`, "test://unit/point.ls")
	if err != nil || res.HasErrors() {
		t.Fatalf("load failed: err=%v res=%v", err, res.IssuesSlice())
	}
	name, err := rootTypeName(s)
	if err != nil || name != "Point" {
		t.Fatalf("rootTypeName() = (%q, %v), want (Point, nil)", name, err)
	}
}

func TestRunValidate_PassAndFail(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "point.ls")
	if err := os.WriteFile(schemaPath, []byte(`type Point = { x: int, y: int }`), 0o644); err != nil {
		t.Fatal(err)
	}

	okPath := filepath.Join(dir, "ok.json")
	if err := os.WriteFile(okPath, []byte(`{"x":1,"y":2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`{"x":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	runCase := func(dataPath string) (string, error) {
		cmd := newRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs([]string{"-s", schemaPath, dataPath})
		err := cmd.Execute()
		return buf.String(), err
	}

	out, err := runCase(okPath)
	if err != nil {
		t.Fatalf("unexpected error for valid input: %v (output: %s)", err, out)
	}
	if !bytes.Contains([]byte(out), []byte("PASSED")) {
		t.Errorf("output = %q, want it to contain PASSED", out)
	}

	out, err = runCase(badPath)
	if err == nil {
		t.Fatal("expected a non-nil error (exit code) for invalid input")
	}
	if !bytes.Contains([]byte(out), []byte("FAILED")) {
		t.Errorf("output = %q, want it to contain FAILED", out)
	}
}
