package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunCheckAllPass(t *testing.T) {
	var out bytes.Buffer
	code := runCheck(&out)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\n%s", code, out.String())
	}
	report := out.String()
	for _, want := range []string{"[PASS] Tile 18", "[PASS] Tile 32", "[PASS] Tile 21"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "[FAIL]") {
		t.Errorf("unexpected failure in report:\n%s", report)
	}
}
