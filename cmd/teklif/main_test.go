package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"warda-panel/internal/teklif"
)

func TestRootCmdTable(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--malzeme", "1000", "--iscilik", "500", "--makine", "300", "--genel-gider", "10", "--kar", "15"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Teklif Tutarı", "2.732,40 TL", "Teminat (%3)"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRootCmdJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--malzeme", "1.000,00", "--kdv", "0", "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var resp teklif.CalculateResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result.Offer.String() != "1000" {
		t.Fatalf("offer = %s", resp.Result.Offer)
	}
}

func TestRootCmdNegative(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--malzeme=-10"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for negative input")
	}
}
