package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fpt/graspify-cli/internal/config"
)

type stubOracle struct {
	responses []string
}

func (o *stubOracle) Invoke(ctx context.Context, instruction string) (string, error) {
	next := o.responses[0]
	o.responses = o.responses[1:]
	return next, nil
}

func (o *stubOracle) ModelID() string { return "stub-oracle" }

type stubSelector struct {
	binaryToken string
}

func (s *stubSelector) PickBinary(ctx context.Context, first, second string) (string, error) {
	return s.binaryToken, nil
}

func (s *stubSelector) PickOption(ctx context.Context, question string) (string, error) {
	return "", nil
}

func TestSessionRun_ReportsFinalIntention(t *testing.T) {
	var out bytes.Buffer
	oracle := &stubOracle{responses: []string{`["hammer"]`}}
	session := NewSession(oracle, &stubSelector{}, config.DefaultCatalog(), config.GetDefaultSettings(), &out)

	if err := session.Run(context.Background(), "power grasp"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Desired grasp type: power grasp") {
		t.Errorf("Missing grasp type header in output:\n%s", output)
	}
	if !strings.Contains(output, "Final grasp intention: hammer") {
		t.Errorf("Missing final intention in output:\n%s", output)
	}
}

func TestSessionRun_ReportsFailureReason(t *testing.T) {
	var out bytes.Buffer
	oracle := &stubOracle{responses: []string{`[]`}}
	session := NewSession(oracle, &stubSelector{}, config.DefaultCatalog(), config.GetDefaultSettings(), &out)

	if err := session.Run(context.Background(), "precision grasp"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "no exclusion possible") {
		t.Errorf("Missing failure reason in output:\n%s", out.String())
	}
}

func TestSessionRun_BinaryChoice(t *testing.T) {
	var out bytes.Buffer
	oracle := &stubOracle{responses: []string{`["fork", "key"]`}}
	session := NewSession(oracle, &stubSelector{binaryToken: "2"}, config.DefaultCatalog(), config.GetDefaultSettings(), &out)

	if err := session.Run(context.Background(), "precision grasp"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Final grasp intention: key") {
		t.Errorf("Expected key to be reported:\n%s", out.String())
	}
}
