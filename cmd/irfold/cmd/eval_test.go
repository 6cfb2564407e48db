package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/irfold/internal/demo"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestRunEval_Fib(t *testing.T) {
	oldBounds, oldPretty := boundsFile, prettyJSON
	defer func() { boundsFile, prettyJSON = oldBounds, oldPretty }()
	boundsFile, prettyJSON = "", false

	output, err := captureStdout(t, func() error {
		return runEval(evalCmd, []string{"fib"})
	})
	if err != nil {
		t.Fatalf("runEval: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, `"kind":"const"`) || !strings.Contains(output, "55") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestRunEval_UnknownDemo(t *testing.T) {
	if _, err := captureStdout(t, func() error {
		return runEval(evalCmd, []string{"does-not-exist"})
	}); err == nil {
		t.Fatal("expected an error for an unrecognized demo name")
	}
}

func TestRunEval_StackOverflowProducesErrorResult(t *testing.T) {
	oldBounds, oldPretty := boundsFile, prettyJSON
	defer func() { boundsFile, prettyJSON = oldBounds, oldPretty }()
	boundsFile, prettyJSON = "", false

	output, err := captureStdout(t, func() error {
		return runEval(evalCmd, []string{"stack-overflow"})
	})
	if err != nil {
		t.Fatalf("runEval: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, `"kind":"error"`) || !strings.Contains(output, "StackOverflowError") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestListCmd_PrintsAllDemoNames(t *testing.T) {
	output, err := captureStdout(t, func() error {
		return listCmd.RunE(listCmd, nil)
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, name := range demo.Names() {
		if !strings.Contains(output, name) {
			t.Errorf("expected %q in list output, got: %s", name, output)
		}
	}
}
