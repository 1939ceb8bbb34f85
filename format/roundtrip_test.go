package format

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/parser"
)

var testcasesDir string
var testFilter string

func init() {
	flag.StringVar(&testcasesDir, "testcases", "testdata", "directory containing .jpp test files")
	flag.StringVar(&testFilter, "filter", "", "filter test files by substring match on filename")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// allFeatures enables every extension so testdata may use any of them.
func allFeatures(t *testing.T) *feature.Set {
	t.Helper()
	s := feature.Default.Empty()
	if _, err := s.Enable("*"); err != nil {
		t.Fatalf("enable all features: %v", err)
	}
	return s
}

// TestRoundTrip_Testcases parses every .jpp file under -testcases, prints
// it, parses the output again and requires an equal tree. Each file
// becomes a subtest: go test ./format -run TestRoundTrip_Testcases/lambdas
func TestRoundTrip_Testcases(t *testing.T) {
	var files []string
	err := filepath.WalkDir(testcasesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".jpp") {
			if testFilter != "" && !strings.Contains(path, testFilter) {
				return nil
			}
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk testcases directory: %v", err)
	}
	if len(files) == 0 {
		t.Skipf("no .jpp files found in %s", testcasesDir)
	}

	for _, file := range files {
		relPath, err := filepath.Rel(testcasesDir, file)
		if err != nil {
			relPath = filepath.Base(file)
		}
		testName := strings.ReplaceAll(relPath, string(filepath.Separator), "_")
		testName = strings.TrimSuffix(testName, ".jpp")

		t.Run(testName, func(t *testing.T) {
			runRoundTripTest(t, file)
		})
	}
}

func runRoundTripTest(t *testing.T, filename string) {
	source, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	features := allFeatures(t)

	orig := parseStatements(t, string(source), features)
	formatted := Statements(orig)
	again := parseStatements(t, formatted, features)

	if !ast.Equal(orig, again) {
		t.Errorf("tree changed after round trip\n=== original ===\n%s\n=== reparsed ===\n%s\n=== formatted ===\n%s",
			ast.Dump(orig), ast.Dump(again), formatted)
	}
	if second := Statements(again); second != formatted {
		t.Errorf("formatting is not idempotent\n=== first ===\n%s\n=== second ===\n%s", formatted, second)
	}
}

func parseStatements(t *testing.T, src string, features *feature.Set) *ast.Block {
	t.Helper()
	p := parser.ParseStatements(strings.NewReader(src), parser.WithFeatures(features))
	n, err := p.Finish()
	if err != nil {
		t.Fatalf("parse error: %v\n=== source ===\n%s", err, src)
	}
	return n.(*ast.Block)
}
